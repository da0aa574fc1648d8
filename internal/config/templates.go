package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# mfinvestor configuration

[display]
# Currency symbol prefixed to display amounts
currency_symbol = "₹"
# Default theme when none is stored: "light" or "dark"
theme = "light"

[storage]
# Runtime target: "native" (encrypted), "web" (plain sqlite) or "memory"
# The native target reads its passphrase from MFX_STORAGE_PASSPHRASE.
target = "web"
# path = "/path/to/mfinvestor.db"

[logging]
level = "info"
console = true
file = false
max_size = 50
max_backups = 5
max_age = 30

# Badge color overrides, hex tokens. Omitted colors keep the built-ins.
[palette.light]
# red = "#E53935"
# yellow = "#FBC02D"
# green = "#43A047"

[palette.dark]
# red = "#EF5350"
# yellow = "#FFD54F"
# green = "#66BB6A"
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
