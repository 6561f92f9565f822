package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"landing-leads/internal/client"
	"landing-leads/internal/form"
	"landing-leads/internal/models"

	"github.com/joho/godotenv"
)

const defaultEndpoint = "http://localhost:8080"

func main() {
	_ = godotenv.Load()

	endpoint := os.Getenv("LEADCTL_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	values := make(map[string]*string, len(models.Fields))

	flag.StringVar(&endpoint, "endpoint", endpoint, "Base URL of the lead capture service")
	values[models.FieldFullName] = flag.String("full-name", "", "Full name (required)")
	values[models.FieldEmail] = flag.String("email", "", "Email address (required)")
	values[models.FieldContactNumber] = flag.String("contact-number", "", "Ten digit contact number without +91 (required)")
	values[models.FieldLocation] = flag.String("location", "", "City, State (required)")
	values[models.FieldBusinessName] = flag.String("business-name", "", "Business name")
	values[models.FieldTeamSize] = flag.String("team-size", "", "Team size: "+teamSizeValues())
	flag.Parse()

	f := form.New(client.New(endpoint))
	for _, name := range models.Fields {
		if err := f.Set(name, strings.TrimSpace(*values[name])); err != nil {
			fail(err.Error())
		}
	}

	if invalid := f.Validate(); len(invalid) > 0 {
		fail("invalid fields: " + strings.Join(invalid, ", "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(form.LabelSubmitting)

	if err := f.Submit(ctx); err != nil {
		var submitErr *form.SubmitError
		if errors.As(err, &submitErr) {
			fail(submitErr.Message)
		}
		fail(err.Error())
	}

	n, ok := f.Notification()
	if ok {
		fmt.Printf("%s %s\n", n.Title, n.Body)
	}
	f.Dismiss()
}

func teamSizeValues() string {
	opts := make([]string, 0, len(models.TeamSizes))
	for _, o := range models.TeamSizes {
		opts = append(opts, o.Value)
	}
	return strings.Join(opts, ", ")
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
