// services/twilio.go
package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers messages through Twilio. Canonical E.164 recipients
// go out over the WhatsApp channel; anything else falls back to SMS.
type TwilioSender struct {
	client         *twilio.RestClient
	whatsappNumber string
	smsNumber      string
}

func NewTwilioSender() *TwilioSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		whatsappNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		smsNumber:      os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (s *TwilioSender) Deliver(recipient, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(message)

	if strings.HasPrefix(recipient, "+") {
		params.SetTo("whatsapp:" + recipient)
		params.SetFrom("whatsapp:" + s.whatsappNumber)
	} else {
		params.SetTo(recipient)
		params.SetFrom(s.smsNumber)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return fmt.Errorf("twilio accepted message to %s but returned no SID", recipient)
	}
	return nil
}
