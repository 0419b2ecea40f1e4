package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/crema-app/crema/internal/cli/wizard"
	"github.com/crema-app/crema/internal/onboarding"
	"github.com/crema-app/crema/internal/store"
	"github.com/crema-app/crema/internal/ui"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your grinder and basket",
	Long: `Run the first-run setup wizard. crema asks for your grinder's scale
range and your basket's dose ranges, then stores them locally.

Without a terminal (or with --non-interactive) the wizard runs headless:
values come from the range flags, or defaults are written when none are
given.

Examples:
  crema onboard
  crema onboard --skip
  crema onboard --non-interactive --grinder-min 1 --grinder-max 10 \
      --in-min 16 --in-max 20 --out-min 32 --out-max 48`,
	Args: cobra.NoArgs,
	RunE: runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)

	onboardCmd.Flags().Bool("skip", false, "Skip the wizard and write default configuration")
	onboardCmd.Flags().Bool("non-interactive", false, "Run without prompts, using flags and defaults")
	onboardCmd.Flags().Bool("force", false, "Run onboarding again even when already completed")
	onboardCmd.Flags().String("grinder-min", "", "Grinder scale minimum")
	onboardCmd.Flags().String("grinder-max", "", "Grinder scale maximum")
	onboardCmd.Flags().String("in-min", "", "Minimum dry dose in grams")
	onboardCmd.Flags().String("in-max", "", "Maximum dry dose in grams")
	onboardCmd.Flags().String("out-min", "", "Minimum beverage weight in grams")
	onboardCmd.Flags().String("out-max", "", "Maximum beverage weight in grams")
	onboardCmd.Flags().String("db", "", "Database file path (default from config)")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// openStore opens the SQLite store at the path from the --db flag or,
// when empty, the configured database path.
func openStore(cmd *cobra.Command) (*store.SQLite, error) {
	path := getStringFlag(cmd, "db")
	if path == "" {
		path = appConfig.Storage.DatabasePath
	}
	db, err := store.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// runOnboard executes the onboarding wizard.
func runOnboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Warn("closing database", "error", cerr)
		}
	}()

	if !getBoolFlag(cmd, "force") {
		done, err := db.Completed(ctx)
		if err != nil {
			return fmt.Errorf("check onboarding state: %w", err)
		}
		if done {
			fmt.Fprintln(cmd.OutOrStdout(), "Onboarding already completed. Use --force to run it again.")
			return nil
		}
	}

	flow := onboarding.NewFlow(db.Grinders(), db.Baskets(), db.Tracker())

	if getBoolFlag(cmd, "skip") {
		if err := flow.Skip(ctx); err != nil {
			return fmt.Errorf("%s", flow.State().Error)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Default configuration saved. Run crema onboard --force to customize later.")
		return nil
	}

	theme := ui.NewTheme(appConfig.System.NoColor)
	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") || appConfig.System.NonInteractive {
		hm.ForceHeadless(true)
	}
	hm.SetDefaults(headlessDefaults(cmd))

	w := wizard.New(flow, theme, hm)
	if err := w.Run(ctx); err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Setup cancelled. Run crema onboard to pick it up again.")
			return nil
		}
		return err
	}
	return nil
}

// headlessDefaults collects the range flags into wizard defaults,
// skipping flags that were left empty.
func headlessDefaults(cmd *cobra.Command) map[string]string {
	pairs := map[string]string{
		wizard.KeyGrinderMin:   getStringFlag(cmd, "grinder-min"),
		wizard.KeyGrinderMax:   getStringFlag(cmd, "grinder-max"),
		wizard.KeyCoffeeInMin:  getStringFlag(cmd, "in-min"),
		wizard.KeyCoffeeInMax:  getStringFlag(cmd, "in-max"),
		wizard.KeyCoffeeOutMin: getStringFlag(cmd, "out-min"),
		wizard.KeyCoffeeOutMax: getStringFlag(cmd, "out-max"),
	}
	defaults := make(map[string]string, len(pairs))
	for k, v := range pairs {
		if v != "" {
			defaults[k] = v
		}
	}
	return defaults
}
