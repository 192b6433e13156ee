package assets

import "embed"

//go:embed srtsync.example.yaml srtsync.example.toml
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "srtsync.example.yaml"

// Variante TOML, utilisée quand --config pointe vers un fichier .toml
const DefaultTOMLConfigAsset = "srtsync.example.toml"

// DefaultConfigAssets : modèles exportés par la commande init.
var DefaultConfigAssets = []string{
	DefaultConfigAsset,
	DefaultTOMLConfigAsset,
}
