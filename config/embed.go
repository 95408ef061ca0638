package config

import _ "embed"

//go:embed tilegrid.yaml
var defaultYAML []byte
