package models

import "time"

type RateLimitConfig struct {
	MaxAmount        int           `yaml:"max_amount" json:"max_amount,omitempty"`
	ValidDuration    time.Duration `yaml:"valid_duration" json:"valid_duration,omitempty"`
	RejectionMessage string        `yaml:"rejection_message" json:"rejection_message,omitempty"`
}

// RateLimitGroups holds one limiter configuration per protected route group.
type RateLimitGroups struct {
	General       RateLimitConfig `yaml:"general" json:"general"`
	Auth          RateLimitConfig `yaml:"auth" json:"auth"`
	AI            RateLimitConfig `yaml:"ai" json:"ai"`
	Upload        RateLimitConfig `yaml:"upload" json:"upload"`
	SweepInterval time.Duration   `yaml:"sweep_interval" json:"sweep_interval,omitempty"`
}
