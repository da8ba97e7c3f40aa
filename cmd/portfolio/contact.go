package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
	contactLang    string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Contact form operations",
}

var contactSendCmd = &cobra.Command{
	Use:     "send",
	Short:   "Send one contact message to the form endpoint",
	Example: `  portfolio contact send --name Ana --email ana@example.com --message "Hola"`,
	RunE:    runContactSend,
}

func init() {
	contactSendCmd.Flags().StringVar(&contactName, "name", "", "sender name")
	contactSendCmd.Flags().StringVar(&contactEmail, "email", "", "sender email")
	contactSendCmd.Flags().StringVar(&contactMessage, "message", "", "message body")
	contactSendCmd.Flags().StringVar(&contactLang, "lang", "", "language for notices (es, en)")
	contactCmd.AddCommand(contactSendCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactSend(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(configFile)
	if err != nil {
		return err
	}
	cfg.Verbose = verbose
	if !verbose {
		cfg.Log.Format = "console"
	}

	logger, _, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tag := i18n.Default()
	if contactLang != "" {
		t, ok := i18n.Parse(contactLang)
		if !ok {
			return fmt.Errorf("unsupported language %q", contactLang)
		}
		tag = t
	}
	loc := i18n.NewLocalizer(tag)

	client, err := contact.NewClient(contact.ClientConfig{Endpoint: cfg.Contact.Endpoint}, logger.Named("contact"))
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	flow := contact.NewFlow(client,
		contact.WithLogger(logger.Named("flow")),
		contact.WithNotifier(contact.NotifierFunc(func(n contact.Notice) {
			fmt.Fprintln(stderr, loc.T(string(n)))
		})))
	defer flow.Stop()

	ctx, cancel := signalContext(logger)
	defer cancel()

	input := models.ContactInput{Name: contactName, Email: contactEmail, Message: contactMessage}
	err = flow.Submit(ctx, input)

	var verr *models.ValidationError
	switch {
	case err == nil:
		fmt.Fprintln(cmd.OutOrStdout(), loc.T(i18n.KeyContactSuccessTitle))
		return nil
	case errors.As(err, &verr):
		return fmt.Errorf("invalid input: %w", err)
	default:
		// The notifier already printed the localized notice.
		logger.Debug("contact send failed", zap.Error(err))
		return err
	}
}
