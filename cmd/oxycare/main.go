package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/oxylife/oxycare/internal/app"
	"github.com/oxylife/oxycare/internal/common"
	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
	"github.com/oxylife/oxycare/internal/services/schedule"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	if command == "version" {
		fmt.Printf("oxycare %s (build %s, commit %s)\n", common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return
	}

	a, err := app.NewApp(os.Getenv("OXYCARE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx := context.Background()

	var cmdErr error
	switch command {
	case "login":
		cmdErr = runLogin(ctx, a, args)
	case "logout":
		cmdErr = runLogout(ctx, a)
	case "whoami":
		cmdErr = runWhoami(ctx, a, args)
	case "patients":
		cmdErr = runPatients(ctx, a, args)
	case "devices":
		cmdErr = runDevices(ctx, a, args)
	case "interventions":
		cmdErr = runInterventions(ctx, a, args)
	case "reminders":
		cmdErr = runReminders(ctx, a, args)
	case "prescribers":
		cmdErr = runPrescribers(ctx, a)
	case "users":
		cmdErr = runUsers(ctx, a)
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: oxycare <command> [flags]

Commands:
  login          Sign in and persist the session
  logout         End the session and clear stored tokens
  whoami         Show the signed-in user
  patients       List or search patients
  devices        List devices or show fleet statistics
  interventions  List interventions
  reminders      Show upcoming interventions (today/week)
  prescribers    List prescribing physicians
  users          List user accounts (admin)
  version        Print version information`)
}

func runLogin(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("user", "", "username")
	fs.Parse(args)

	common.PrintBanner(a.Config, a.Logger)

	reader := bufio.NewReader(os.Stdin)
	name := *username
	if name == "" {
		fmt.Print("Nom d'utilisateur: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		name = strings.TrimSpace(line)
	}

	fmt.Print("Mot de passe: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	password := strings.TrimSpace(line)

	user, err := a.API.Auth().Login(ctx, name, password)
	if err != nil {
		return err
	}

	fmt.Printf("Connecté en tant que %s (%s)\n", user.DisplayName(), user.Role)
	return nil
}

func runLogout(ctx context.Context, a *app.App) error {
	if err := a.API.Auth().Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Session terminée.")
	return nil
}

func runWhoami(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	remote := fs.Bool("remote", false, "fetch the profile from the backend instead of the local cache")
	fs.Parse(args)

	user, err := a.API.Auth().CachedUser(ctx)
	if err != nil {
		return err
	}
	if *remote || user == nil {
		user, err = a.API.Auth().Profile(ctx)
		if err != nil {
			return err
		}
	}

	fmt.Printf("%s (%s) <%s> role=%s\n", user.DisplayName(), user.Username, user.Email, user.Role)
	return nil
}

func runPatients(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("patients", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", 20, "results per page")
	search := fs.String("search", "", "free-text search")
	fs.Parse(args)

	result, err := a.API.Patients().List(ctx, *page, *perPage, *search)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNOM\tPRENOM\tVILLE\tTELEPHONE")
	for _, p := range result.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Code, p.LastName, p.FirstName, p.City, p.Phone)
	}
	w.Flush()

	fmt.Printf("\n%d patients (page %d/%d)\n", result.Count(), result.CurrentPage, result.TotalPages)
	return nil
}

func runDevices(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("devices", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", 20, "results per page")
	search := fs.String("search", "", "free-text search")
	stats := fs.Bool("stats", false, "show fleet statistics instead of the list")
	fs.Parse(args)

	if *stats {
		s, err := a.API.Devices().Statistics(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Dispositifs: %d total, %d sous garantie\n", s.TotalDevices, s.UnderWarranty)
		for status, count := range s.StatusBreakdown {
			fmt.Printf("  %-16s %d\n", status, count)
		}
		return nil
	}

	result, err := a.API.Devices().List(ctx, *page, *perPage, *search)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESIGNATION\tREFERENCE\tN° SERIE\tSTATUT\tPATIENT")
	for _, d := range result.Items {
		patient := "-"
		if d.Patient != nil {
			patient = fmt.Sprintf("%s %s", d.Patient.LastName, d.Patient.FirstName)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", d.ID, d.Designation, d.Reference, d.SerialNumber, d.Status, patient)
	}
	w.Flush()
	return nil
}

func runInterventions(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("interventions", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", 20, "results per page")
	status := fs.String("status", "", "filter by status")
	technician := fs.Int("technician", 0, "filter by technician ID")
	search := fs.String("search", "", "free-text search")
	fs.Parse(args)

	filter := interfaces.InterventionFilter{
		Page:         *page,
		PerPage:      *perPage,
		Status:       *status,
		TechnicianID: *technician,
		Search:       *search,
	}

	result, err := a.API.Interventions().List(ctx, filter)
	if err != nil {
		return err
	}

	printInterventions(result.Items, time.Now())
	fmt.Printf("\n%d interventions (page %d/%d)\n", result.Count(), result.CurrentPage, result.TotalPages)
	return nil
}

func runReminders(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("reminders", flag.ExitOnError)
	window := fs.String("window", "week", "reminder window: today or week")
	technician := fs.Int("technician", 0, "filter by technician ID")
	fs.Parse(args)

	filter := interfaces.InterventionFilter{
		Status:       models.StatusPlanned,
		TechnicianID: *technician,
		PerPage:      100,
	}
	result, err := a.API.Interventions().List(ctx, filter)
	if err != nil {
		return err
	}

	w := schedule.WindowWeek
	if *window == "today" {
		w = schedule.WindowToday
	}

	now := time.Now()
	upcoming := schedule.Upcoming(result.Items, w, now)
	schedule.SortByPlannedDate(upcoming)

	if len(upcoming) == 0 {
		fmt.Println("Aucune intervention à venir.")
		return nil
	}

	printInterventions(upcoming, now)
	return nil
}

func printInterventions(items []models.Intervention, now time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTRAITEMENT\tTYPE\tSTATUT\tPATIENT\tURGENCE")
	for _, iv := range items {
		patient := "-"
		if iv.Patient != nil {
			patient = fmt.Sprintf("%s %s", iv.Patient.LastName, iv.Patient.FirstName)
		}
		urgency := schedule.Classify(iv.PlannedDate, now)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			iv.ID, iv.PlannedDate, iv.Treatment, iv.Type, iv.Status, patient, urgency)
	}
	w.Flush()
}

func runPrescribers(ctx context.Context, a *app.App) error {
	list, err := a.API.Prescribers().List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOM\tPRENOM\tSPECIALITE\tTELEPHONE")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.LastName, p.FirstName, p.Specialty, p.Phone)
	}
	w.Flush()
	return nil
}

func runUsers(ctx context.Context, a *app.App) error {
	list, err := a.API.Users().List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUTILISATEUR\tNOM\tROLE\tACTIF")
	for _, u := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.DisplayName(), u.Role, u.Active)
	}
	w.Flush()
	return nil
}
