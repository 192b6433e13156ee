package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/patrickprogramme/srtsync/internal/assets"
	"github.com/patrickprogramme/srtsync/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 2

// préfixe des variables d'environnement (SRTSYNC_DIRECTION, SRTSYNC_LOG_LEVEL, ...)
const envPrefix = "srtsync"

// struct pour les paramètres de configuration
type Config struct {
	// Synchronisation
	Direction string `yaml:"direction" toml:"direction"`
	Extension string `yaml:"extension" toml:"extension"`

	// Delay : clé de la version 1 (true = retarder), remplacée par Direction.
	Delay *bool `yaml:"delay,omitempty" toml:"delay,omitempty" ignored:"true"`

	// Sauvegarde de la destination avant remplacement
	Backup bool `yaml:"backup" toml:"backup"`

	// Presse-papier
	UseClipboard   bool `yaml:"use_clipboard" toml:"use_clipboard" split_words:"true"`
	CopyOutputPath bool `yaml:"copy_output_path" toml:"copy_output_path" split_words:"true"`

	Log LogConfig `yaml:"log" toml:"log"`

	ConfigVersion int `yaml:"config_version" toml:"config_version" ignored:"true"`

	configFilePath string
}

// configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Synchronisation
	c.Direction = "delay"
	c.Extension = ".srt"

	c.Backup = false

	// Presse-papier
	c.UseClipboard = true
	c.CopyOutputPath = false

	// Logs
	c.Log.Level = "info"
	c.Log.Format = "text"

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Default retourne la configuration par défaut, sans fichier.
func Default() *Config {
	return defaultConfig()
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets.
// Un chemin en .toml est décodé en TOML, tout le reste en YAML.
// Les variables d'environnement SRTSYNC_* sont appliquées en dernier.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "srtsync.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()
	// un fichier sans config_version est considéré comme version 0
	cfg.ConfigVersion = 0

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if isTOML(path) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
		}
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	// l'environnement a priorité sur le fichier
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv surcharge la config avec les variables SRTSYNC_*.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(envPrefix, c); err != nil {
		return fmt.Errorf("lecture des variables d'environnement : %w", err)
	}
	c.normalizeConfig()
	return nil
}

// Path retourne le chemin du fichier chargé (vide pour Default()).
func (c *Config) Path() string {
	return c.configFilePath
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	asset := assets.DefaultConfigAsset
	if isTOML(dstPath) {
		asset = assets.DefaultTOMLConfigAsset
	}
	b, err := assets.Embedded.ReadFile(asset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels), crée le dossier parent
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	c.Direction = strings.TrimSpace(strings.ToLower(c.Direction))
	if c.Direction == "" {
		c.Direction = "delay"
	}

	c.Extension = strings.TrimSpace(strings.ToLower(c.Extension))
	if c.Extension == "" {
		c.Extension = ".srt"
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}

	c.Log.normalize()
}
