package config

import (
	"os"
	"strconv"
	"time"
)

// ShopConfig carries the shop-level settings that used to live as ambient
// globals in older iterations: the display name stamped into every outgoing
// message and the pacing between bulk sends.
type ShopConfig struct {
	Name          string
	DispatchDelay time.Duration
}

func LoadShopConfig() ShopConfig {
	cfg := ShopConfig{
		Name:          "ShopConnect",
		DispatchDelay: 10 * time.Second,
	}
	if name := os.Getenv("SHOP_NAME"); name != "" {
		cfg.Name = name
	}
	if env := os.Getenv("DISPATCH_DELAY_SECONDS"); env != "" {
		if secs, err := strconv.Atoi(env); err == nil && secs >= 0 {
			cfg.DispatchDelay = time.Duration(secs) * time.Second
		}
	}
	return cfg
}
