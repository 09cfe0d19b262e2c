package setup

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/cookidoo"
)

// ServerKey is the entry name under mcpServers in the Claude Desktop config.
const ServerKey = "cookidoo-thermomix"

// BinaryName is the server binary the wizard looks for on PATH.
const BinaryName = "mcp-cookidoo-thermomix"

// Wizard drives the interactive setup flow. The reader, writer and the
// password/binary lookups are injectable for tests.
type Wizard struct {
	In           *bufio.Reader
	Out          io.Writer
	ConfigPath   string
	LookPath     func(string) (string, error)
	ReadPassword func() (string, error)

	lang string
}

func NewWizard(in io.Reader, out io.Writer, configPath string) *Wizard {
	return &Wizard{
		In:         bufio.NewReader(in),
		Out:        out,
		ConfigPath: configPath,
		LookPath:   exec.LookPath,
		ReadPassword: func() (string, error) {
			pw, err := term.ReadPassword(int(os.Stdin.Fd()))
			return string(pw), err
		},
	}
}

func (w *Wizard) printf(format string, args ...any) {
	fmt.Fprintf(w.Out, format+"\n", args...)
}

func (w *Wizard) t(key string) string {
	return uiStrings[w.lang][key]
}

func (w *Wizard) readLine(prompt string) string {
	fmt.Fprint(w.Out, prompt)
	line, _ := w.In.ReadString('\n')
	return strings.TrimSpace(line)
}

// ServerEntry builds the mcpServers entry for the given settings.
func ServerEntry(binary, email, password, country, language string) map[string]any {
	return map[string]any{
		"command": binary,
		"env": map[string]any{
			"COOKIDOO_EMAIL":    email,
			"COOKIDOO_PASSWORD": password,
			"COOKIDOO_COUNTRY":  country,
			"COOKIDOO_LANGUAGE": language,
		},
	}
}

// MergeServerEntry inserts entry under mcpServers/<ServerKey>, preserving all
// other servers. It returns the names of the preserved entries.
func MergeServerEntry(config map[string]any, entry map[string]any) []string {
	servers, ok := config["mcpServers"].(map[string]any)
	if !ok {
		servers = map[string]any{}
		config["mcpServers"] = servers
	}
	servers[ServerKey] = entry

	var others []string
	for name := range servers {
		if name != ServerKey {
			others = append(others, name)
		}
	}
	sort.Strings(others)
	return others
}

// MaskPassword keeps the first two characters and stars the rest.
func MaskPassword(password string) string {
	if len(password) > 2 {
		return password[:2] + strings.Repeat("*", len(password)-2)
	}
	return "***"
}

func (w *Wizard) readConfig() map[string]any {
	config := map[string]any{}
	data, err := os.ReadFile(w.ConfigPath)
	if err != nil {
		return config
	}
	if err := json.Unmarshal(data, &config); err != nil {
		w.printf(w.t("config_read_error"), err)
		return map[string]any{}
	}
	return config
}

func (w *Wizard) writeConfig(config map[string]any) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(w.ConfigPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(w.ConfigPath, append(data, '\n'), 0o600)
}

func (w *Wizard) askLanguage() {
	fmt.Fprintln(w.Out, "\n=== mcp-cookidoo-thermomix ===")
	choice := w.readLine("  1) Francais\n  2) English\nChoisissez la langue / Choose language [1] : ")
	if choice == "2" {
		w.lang = "en"
	} else {
		w.lang = "fr"
	}
}

func (w *Wizard) askCredentials() (email, password string, err error) {
	w.printf("\n%s", w.t("creds_header"))
	email = w.readLine(w.t("email_prompt"))
	if email == "" {
		return "", "", fmt.Errorf("%s", w.t("email_empty"))
	}
	fmt.Fprint(w.Out, w.t("password_prompt"))
	password, err = w.ReadPassword()
	fmt.Fprintln(w.Out)
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", fmt.Errorf("%s", w.t("password_empty"))
	}
	return email, password, nil
}

func (w *Wizard) askLocale() cookidoo.Localization {
	w.printf("\n%s", w.t("locale_header"))
	locales := cookidoo.Locales()
	for i, loc := range locales {
		w.printf("  %d) %s", i+1, loc.Label)
	}
	choice := w.readLine(w.t("locale_prompt"))
	if choice == "" {
		choice = "1"
	}
	idx := 0
	if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(locales) {
		w.printf(w.t("locale_invalid"), choice)
		idx = 1
	}
	return locales[idx-1]
}

// handleExisting deals with an already-configured server entry. It returns
// true when the wizard is done and should exit.
func (w *Wizard) handleExisting(config map[string]any, servers, entry map[string]any) (bool, error) {
	env, _ := entry["env"].(map[string]any)
	currentEmail, _ := env["COOKIDOO_EMAIL"].(string)

	w.printf("\n"+w.t("already_installed"), currentEmail)
	fmt.Fprintln(w.Out, w.t("already_menu"))
	choice := w.readLine(w.t("already_prompt"))
	if choice == "" {
		choice = "3"
	}

	switch choice {
	case "1":
		email, password, err := w.askCredentials()
		if err != nil {
			return true, err
		}
		env["COOKIDOO_EMAIL"] = email
		env["COOKIDOO_PASSWORD"] = password
		entry["env"] = env
		servers[ServerKey] = entry
		if err := w.writeConfig(config); err != nil {
			return true, err
		}
		w.printf("\n%s", w.t("creds_updated"))
		fmt.Fprintln(w.Out, w.t("done_restart"))
		return true, nil
	case "2":
		return false, nil // fall through to full setup
	default:
		fmt.Fprintln(w.Out, w.t("already_ok"))
		return true, nil
	}
}

// Run walks the user through configuring the MCP server in Claude Desktop.
func (w *Wizard) Run() error {
	w.askLanguage()
	w.printf("\n%s", w.t("title"))

	config := w.readConfig()
	if servers, ok := config["mcpServers"].(map[string]any); ok {
		if entry, ok := servers[ServerKey].(map[string]any); ok {
			done, err := w.handleExisting(config, servers, entry)
			if done || err != nil {
				return err
			}
		}
	}

	binary, err := w.LookPath(BinaryName)
	if err == nil {
		w.printf("\n"+w.t("binary_found"), binary)
	} else {
		w.printf("\n%s", w.t("binary_not_found"))
		binary = w.readLine(w.t("binary_ask"))
		if binary == "" {
			binary = BinaryName
		}
	}

	email, password, err := w.askCredentials()
	if err != nil {
		return err
	}

	locale := w.askLocale()

	w.printf("\n"+w.t("config_file"), w.ConfigPath)

	entry := ServerEntry(binary, email, password, locale.Country, locale.Language)
	others := MergeServerEntry(config, entry)

	w.printf("\n%s", w.t("summary_header"))
	w.printf(w.t("summary_binary"), binary)
	w.printf(w.t("summary_email"), email)
	w.printf(w.t("summary_password"), MaskPassword(password))
	w.printf(w.t("summary_country"), locale.Country)
	w.printf(w.t("summary_language"), locale.Language)
	w.printf(w.t("summary_config"), w.ConfigPath)
	if len(others) > 0 {
		w.printf(w.t("other_servers"), strings.Join(others, ", "))
	}

	confirm := strings.ToLower(w.readLine("\n" + w.t("confirm")))
	if confirm != "" && confirm != "o" && confirm != "y" {
		fmt.Fprintln(w.Out, w.t("aborted"))
		return nil
	}

	if err := w.writeConfig(config); err != nil {
		return err
	}

	w.printf("\n"+w.t("done_written"), w.ConfigPath)
	fmt.Fprintln(w.Out, w.t("done_restart"))
	return nil
}
