package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d,%d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	return nil
}

func (q *QuizConfig) validate() error {
	if q.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", q.MaxAttempts)
	}
	if q.BackoffBase <= 0 {
		return fmt.Errorf("backoff_base must be positive (got %s)", q.BackoffBase)
	}
	if q.Temperature < 0 || q.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0,2] (got %g)", q.Temperature)
	}
	if q.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive (got %d)", q.MaxTokens)
	}
	return nil
}
