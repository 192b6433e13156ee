package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Validate vérifie les valeurs après chargement + surcharges.
// Retourne la première erreur rencontrée.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config nil")
	}

	switch c.Direction {
	case "delay", "advance", "hasten", "retreat":
	default:
		return fmt.Errorf("direction inconnue %q (attendu : delay ou hasten)", c.Direction)
	}

	if strings.Trim(c.Extension, ".") == "" {
		return fmt.Errorf("extension vide")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("niveau de log invalide %q : %w", c.Log.Level, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("format de log inconnu %q (attendu : text ou json)", c.Log.Format)
	}
	return nil
}
