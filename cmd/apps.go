package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexmo-community/nexmo-go/application"
)

var appAnswerURL string

// appsCmd represents the apps command group
var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Manage API applications",
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications on the account",
	RunE:  runAppsList,
}

var appsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppsCreate,
}

var appsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppsDelete,
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.AddCommand(appsListCmd)
	appsCmd.AddCommand(appsCreateCmd)
	appsCmd.AddCommand(appsDeleteCmd)

	appsListCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "client-side predicate expression")
	appsCreateCmd.Flags().StringVar(&appAnswerURL, "answer-url", "", "voice answer webhook to register")
}

func runAppsList(cmd *cobra.Command, args []string) error {
	apps, err := client.Applications.List(context.Background())
	if err != nil {
		return err
	}

	pred, err := compileWhere()
	if err != nil {
		return err
	}

	shown := 0
	for _, app := range apps {
		if pred != nil {
			match, err := pred.Match(map[string]any{
				"ID":   app.ID,
				"Name": app.Name,
			})
			if err != nil {
				return err
			}
			if !match {
				continue
			}
		}
		shown++
		fmt.Printf("• %s (%s)\n", app.Name, app.ID)
	}

	fmt.Printf("\n%d of %d applications shown\n", shown, len(apps))
	return nil
}

func runAppsCreate(cmd *cobra.Command, args []string) error {
	app := application.Application{Name: args[0]}
	if appAnswerURL != "" {
		app.Capabilities = &application.Capabilities{
			Voice: &application.Capability{
				Webhooks: map[string]application.Webhook{
					"answer_url": {Address: appAnswerURL, HTTPMethod: "GET"},
				},
			},
		}
	}

	created, err := client.Applications.Create(context.Background(), app)
	if err != nil {
		return err
	}

	fmt.Printf("Created application %s (%s)\n", created.Name, created.ID)
	if created.Keys != nil && created.Keys.PrivateKey != "" {
		fmt.Println("\nPrivate key (shown once, store it now):")
		fmt.Println(created.Keys.PrivateKey)
	}
	return nil
}

func runAppsDelete(cmd *cobra.Command, args []string) error {
	if err := client.Applications.Delete(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Println("Application deleted.")
	return nil
}
