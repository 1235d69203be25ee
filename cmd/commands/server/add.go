package server

import (
	"fmt"
	"os"

	"serverbook/internal/domain"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// AddCommand returns the "server add" command.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a server",
		Long: `Register a server in the inventory.

Without --name, an interactive form is shown. Example:
  serverbook server add --name web-1 --hostname web1.internal --status ACTIVE --purpose PROD`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE:         runAdd,
	}

	cmd.Flags().String("name", "", "Server name (required unless interactive)")
	cmd.Flags().String("hostname", "", "Hostname (required unless interactive)")
	cmd.Flags().String("ip", "", "Public IP address")
	cmd.Flags().String("private-ip", "", "Private IP address")
	cmd.Flags().Int("port", 0, "SSH port")
	cmd.Flags().String("username", "", "Login username")
	cmd.Flags().String("password", "", "Login password (stored, redacted in output)")
	cmd.Flags().String("status", "", "Status: ACTIVE, STANDBY, or TO_DECOM (default ACTIVE)")
	cmd.Flags().String("purpose", "", "Purpose: PROD, STAGING, DEV, or TEST (default DEV)")
	cmd.Flags().String("billing", "", "Billing type: HOURLY, MONTHLY, or SPOT (default MONTHLY)")
	cmd.Flags().Float64("cost", 0, "Estimated monthly cost")
	cmd.Flags().String("decommission", "", "Planned decommission date (YYYY-MM-DD)")
	cmd.Flags().Int64("provider", 0, "Provider ID")
	cmd.Flags().Int64("owner", 0, "Owner (person) ID")
	cmd.Flags().String("os", "", "Operating system")
	cmd.Flags().String("location", "", "Datacenter or region")
	cmd.Flags().String("description", "", "Free-form description")
	cmd.Flags().String("tags", "", "Comma-separated tags")
	cmd.Flags().String("account", "", "Billing account")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	fields, err := fieldsFromFlags(cmd)
	if err != nil {
		return err
	}

	if fields.Name == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--name is required")
		}
		if err := promptForServer(&fields); err != nil {
			return err
		}
	}

	reg, closeFn, err := openRegistry()
	if err != nil {
		return err
	}
	defer closeFn()

	s, err := reg.Create(cmd.Context(), fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Server %q registered with ID %d\n", s.Name, s.ID)
	return nil
}

// fieldsFromFlags collects only the flags that were explicitly set, so the
// registry's defaults apply to everything else.
func fieldsFromFlags(cmd *cobra.Command) (domain.ServerFields, error) {
	var f domain.ServerFields

	str := func(name string, dst **string) {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*dst = &v
		}
	}

	str("name", &f.Name)
	str("hostname", &f.Hostname)
	str("ip", &f.IPPublic)
	str("private-ip", &f.IPPrivate)
	str("username", &f.Username)
	str("password", &f.Password)
	str("decommission", &f.DecommissionAt)
	str("os", &f.OS)
	str("location", &f.Location)
	str("description", &f.Description)
	str("tags", &f.Tags)
	str("account", &f.Account)

	if cmd.Flags().Changed("port") {
		v, _ := cmd.Flags().GetInt("port")
		f.Port = &v
	}
	if cmd.Flags().Changed("cost") {
		v, _ := cmd.Flags().GetFloat64("cost")
		f.CostMonthEstimated = &v
	}
	if cmd.Flags().Changed("provider") {
		v, _ := cmd.Flags().GetInt64("provider")
		f.ProviderID = &v
	}
	if cmd.Flags().Changed("owner") {
		v, _ := cmd.Flags().GetInt64("owner")
		f.OwnerID = &v
	}

	if cmd.Flags().Changed("status") {
		raw, _ := cmd.Flags().GetString("status")
		v, err := domain.ParseStatus(raw)
		if err != nil {
			return f, err
		}
		f.Status = &v
	}
	if cmd.Flags().Changed("purpose") {
		raw, _ := cmd.Flags().GetString("purpose")
		v, err := domain.ParsePurpose(raw)
		if err != nil {
			return f, err
		}
		f.Purpose = &v
	}
	if cmd.Flags().Changed("billing") {
		raw, _ := cmd.Flags().GetString("billing")
		v, err := domain.ParseBillingType(raw)
		if err != nil {
			return f, err
		}
		f.BillingType = &v
	}

	return f, nil
}

// promptForServer runs the interactive registration form for the fields an
// operator typically fills in by hand.
func promptForServer(f *domain.ServerFields) error {
	var name, hostname, ip string
	status := domain.StatusActive
	purpose := domain.PurposeDev

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Validate(huh.ValidateNotEmpty()).Value(&name),
			huh.NewInput().Title("Hostname").Validate(huh.ValidateNotEmpty()).Value(&hostname),
			huh.NewInput().Title("Public IP").Value(&ip),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Status]().
				Title("Status").
				Options(
					huh.NewOption("Active", domain.StatusActive),
					huh.NewOption("Standby", domain.StatusStandby),
					huh.NewOption("To decommission", domain.StatusToDecom),
				).
				Value(&status),
			huh.NewSelect[domain.Purpose]().
				Title("Purpose").
				Options(
					huh.NewOption("Production", domain.PurposeProd),
					huh.NewOption("Staging", domain.PurposeStaging),
					huh.NewOption("Development", domain.PurposeDev),
					huh.NewOption("Testing", domain.PurposeTest),
				).
				Value(&purpose),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	f.Name = &name
	f.Hostname = &hostname
	if ip != "" {
		f.IPPublic = &ip
	}
	f.Status = &status
	f.Purpose = &purpose
	return nil
}
