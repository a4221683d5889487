// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"shopconnect-backend/models"
)

// Scheduler runs the daily engagement pass: birthday and anniversary
// greetings plus wishes for any festival falling on the current day.
type Scheduler struct {
	registry   *Registry
	calendar   *FestivalCalendar
	composer   *Composer
	dispatcher *Dispatcher
	cron       *cron.Cron
}

func NewScheduler(registry *Registry, calendar *FestivalCalendar, composer *Composer, dispatcher *Dispatcher) *Scheduler {
	return &Scheduler{
		registry:   registry,
		calendar:   calendar,
		composer:   composer,
		dispatcher: dispatcher,
		cron:       cron.New(),
	}
}

// Start schedules the daily pass at 9 AM.
func (s *Scheduler) Start() {
	s.cron.AddFunc("0 9 * * *", s.RunDaily)
	s.cron.Start()
	log.Println("Engagement scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunDaily sends today's occasion greetings to active customers.
func (s *Scheduler) RunDaily() {
	log.Println("Starting daily engagement processing...")
	today := time.Now()

	if customers, err := s.registry.BirthdaysOn(today); err != nil {
		log.Printf("Failed to get birthday customers: %v", err)
	} else if len(customers) > 0 {
		result := s.dispatcher.SendBatch(s.composer.Birthday(activeOnly(customers)), "personalized")
		log.Printf("Birthday greetings: %d sent, %d failed", result.Sent, result.Failed)
	}

	if customers, err := s.registry.AnniversariesOn(today); err != nil {
		log.Printf("Failed to get anniversary customers: %v", err)
	} else if len(customers) > 0 {
		result := s.dispatcher.SendBatch(s.composer.Anniversary(activeOnly(customers)), "personalized")
		log.Printf("Anniversary greetings: %d sent, %d failed", result.Sent, result.Failed)
	}

	festivals, err := s.calendar.Today()
	if err != nil {
		log.Printf("Failed to get today's festivals: %v", err)
		return
	}
	if len(festivals) == 0 {
		log.Println("Daily engagement processing completed")
		return
	}

	customers, err := s.registry.Active()
	if err != nil {
		log.Printf("Failed to get active customers: %v", err)
		return
	}
	for _, festival := range festivals {
		result := s.dispatcher.SendBatch(s.composer.Festival(customers, festival.Name), "bulk")
		log.Printf("%s greetings: %d sent, %d failed", festival.Name, result.Sent, result.Failed)
	}

	log.Println("Daily engagement processing completed")
}

func activeOnly(customers []models.Customer) []models.Customer {
	var active []models.Customer
	for _, c := range customers {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active
}
