package setup

// All user-facing wizard strings, keyed by UI language.
var uiStrings = map[string]map[string]string{
	"fr": {
		"title":             "=== mcp-cookidoo-thermomix - Configuration ===",
		"binary_found":      "Binaire trouve : %s",
		"binary_not_found":  "Attention : 'mcp-cookidoo-thermomix' introuvable dans le PATH.",
		"binary_ask":        "Entrez le chemin complet du binaire (ou Entree pour utiliser le nom tel quel) : ",
		"creds_header":      "--- Identifiants Cookidoo ---",
		"email_prompt":      "Email : ",
		"email_empty":       "Erreur : l'email ne peut pas etre vide.",
		"password_prompt":   "Mot de passe : ",
		"password_empty":    "Erreur : le mot de passe ne peut pas etre vide.",
		"locale_header":     "--- Langue / Pays ---",
		"locale_prompt":     "Choisissez votre locale [1] : ",
		"locale_invalid":    "Choix invalide '%s', FR par defaut.",
		"config_file":       "Fichier de config : %s",
		"config_read_error": "Attention : impossible de lire la config existante (%v), on repart de zero.",
		"summary_header":    "--- Resume ---",
		"summary_binary":    "  Binaire      : %s",
		"summary_email":     "  Email        : %s",
		"summary_password":  "  Mot de passe : %s",
		"summary_country":   "  Pays         : %s",
		"summary_language":  "  Langue       : %s",
		"summary_config":    "  Config       : %s",
		"other_servers":     "  Autres serveurs MCP (conserves) : %s",
		"confirm":           "Ecrire la config ? [O/n] ",
		"aborted":           "Abandonne.",
		"done_written":      "Config ecrite dans %s",
		"done_restart":      "Redemarrez Claude Desktop pour utiliser le MCP !",
		"already_installed": "cookidoo-thermomix est deja configure (email: %s).",
		"already_menu":      "  1) Changer de compte (identifiants uniquement)\n  2) Tout reconfigurer\n  3) Quitter",
		"already_prompt":    "Votre choix [3] : ",
		"already_ok":        "Rien a faire. Bonne cuisine !",
		"creds_updated":     "Identifiants mis a jour !",
	},
	"en": {
		"title":             "=== mcp-cookidoo-thermomix - Setup ===",
		"binary_found":      "Binary found: %s",
		"binary_not_found":  "Warning: 'mcp-cookidoo-thermomix' not found on PATH.",
		"binary_ask":        "Enter the full path to the binary (or press Enter to use the name as-is): ",
		"creds_header":      "--- Cookidoo Credentials ---",
		"email_prompt":      "Email: ",
		"email_empty":       "Error: email cannot be empty.",
		"password_prompt":   "Password: ",
		"password_empty":    "Error: password cannot be empty.",
		"locale_header":     "--- Locale ---",
		"locale_prompt":     "Choose your locale [1]: ",
		"locale_invalid":    "Invalid choice '%s', defaulting to FR.",
		"config_file":       "Config file: %s",
		"config_read_error": "Warning: could not read existing config (%v), starting fresh.",
		"summary_header":    "--- Summary ---",
		"summary_binary":    "  Binary:   %s",
		"summary_email":     "  Email:    %s",
		"summary_password":  "  Password: %s",
		"summary_country":   "  Country:  %s",
		"summary_language":  "  Language: %s",
		"summary_config":    "  Config:   %s",
		"other_servers":     "  Other MCP servers (preserved): %s",
		"confirm":           "Write config? [Y/n] ",
		"aborted":           "Aborted.",
		"done_written":      "Config written to %s",
		"done_restart":      "Restart Claude Desktop to use the MCP!",
		"already_installed": "cookidoo-thermomix is already configured (email: %s).",
		"already_menu":      "  1) Switch account (credentials only)\n  2) Full reconfiguration\n  3) Quit",
		"already_prompt":    "Your choice [3]: ",
		"already_ok":        "Nothing to do. Happy cooking!",
		"creds_updated":     "Credentials updated!",
	},
}
