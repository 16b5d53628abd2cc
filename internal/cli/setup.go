package cli

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the server address and editor name",
	Long: `Write the keyline configuration file. Without flags an interactive
form asks for the values; with --url and --name set, the file is written
directly, which suits provisioning scripts.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().String("url", "", "Localization service base URL")
	setupCmd.Flags().String("name", "", "Editor name recorded on saved translations")
}

func runSetup(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := deps.EnsureConfig(); err != nil {
		return err
	}
	cfg := *deps.Config.Get()

	baseURL, _ := cmd.Flags().GetString("url")
	name, _ := cmd.Flags().GetString("name")

	if v, ok := deps.Headless.GetDefault("base_url"); ok && baseURL == "" {
		baseURL = v
	}
	if v, ok := deps.Headless.GetDefault("editor"); ok && name == "" {
		name = v
	}

	interactive := !deps.Headless.IsHeadless() && (baseURL == "" || name == "")
	if interactive {
		if baseURL == "" {
			baseURL = cfg.API.BaseURL
		}
		if name == "" {
			name = cfg.User.Name
		}
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Service URL").
				Description("Base URL of the localization service").
				Validate(validateBaseURL).
				Value(&baseURL),
			huh.NewInput().
				Title("Your name").
				Description("Recorded as updated_by on every translation you save").
				Validate(validateRequired).
				Value(&name),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return fmt.Errorf("setup cancelled")
			}
			return fmt.Errorf("setup form: %w", err)
		}
	}

	if baseURL == "" || name == "" {
		return fmt.Errorf("setup needs --url and --name when no terminal is attached")
	}
	if err := validateBaseURL(baseURL); err != nil {
		return err
	}

	cfg.API.BaseURL = baseURL
	cfg.User.Name = name
	if err := deps.Config.Set(cfg); err != nil {
		return err
	}
	if err := deps.Config.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "%s configuration written to %s\n", symSuccess(), deps.Config.Dir())
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http or https URL")
	}
	return nil
}

func validateRequired(v string) error {
	if v == "" {
		return fmt.Errorf("required")
	}
	return nil
}
