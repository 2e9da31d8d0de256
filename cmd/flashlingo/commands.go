package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flashlingo/flashlingo-go/core/apiclient"
)

func loginCmd(flags *appFlags) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the FlashLingo API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			reader := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			token, err := app.Client.PasswordLogin(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := app.Store.Login(cmd.Context(), token); err != nil {
				if msg := app.Store.Current().LastError; msg != "" {
					return errors.New(msg)
				}
				return err
			}

			sess := app.Store.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n",
				sess.Profile.DisplayName(), sess.Profile.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	return cmd
}

func logoutCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Store.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			sess := app.Store.Current()
			if !sess.IsAuthenticated() {
				if sess.LastError != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Not logged in (%s)\n", sess.LastError)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				}
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), role %s\n",
				sess.Profile.DisplayName(), sess.Profile.Email, sess.Profile.Role)
			return nil
		},
	}
}

func cardsCmd(flags *appFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Work with flashcards",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all accessible flashcards",
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer app.Close()

				if err := app.Authorize(viewDashboard); err != nil {
					return err
				}

				cards, err := app.Client.Flashcards(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tFRONT\tBACK\tLANGUAGE\tAUTHOR\tOWNED")
				for _, c := range cards {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
						c.ID, c.Front, c.Back, c.Language, c.AuthorName, c.IsOwner)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show study statistics",
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer app.Close()

				if err := app.Authorize(viewDashboard); err != nil {
					return err
				}

				stats, err := app.Client.Stats(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Total cards:     %d\nCards to review: %d\nAverage level:   %.1f\nStreak:          %d\n",
					stats.TotalCards, stats.CardsToReview, stats.AverageLevel, stats.Streak)
				return nil
			},
		},
		cardsShareCmd(flags),
		cardsDeleteCmd(flags),
	)

	return cmd
}

func cardsShareCmd(flags *appFlags) *cobra.Command {
	var emails []string

	cmd := &cobra.Command{
		Use:   "share <card-id>...",
		Short: "Share cards with other users by email",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Authorize(viewDashboard); err != nil {
				return err
			}
			if err := app.Client.ShareFlashcards(cmd.Context(), args, emails); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shared %d card(s) with %s\n",
				len(args), strings.Join(emails, ", "))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&emails, "with", nil, "Email addresses to share with")
	_ = cmd.MarkFlagRequired("with")
	return cmd
}

func cardsDeleteCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <card-id>...",
		Short: "Delete cards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Authorize(viewDashboard); err != nil {
				return err
			}
			if err := app.Client.DeleteFlashcards(cmd.Context(), args); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d card(s)\n", len(args))
			return nil
		},
	}
}

func catalogsCmd(flags *appFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogs",
		Short: "Work with catalogs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List owned catalogs",
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer app.Close()

				if err := app.Authorize(viewDashboard); err != nil {
					return err
				}

				catalogs, err := app.Client.OwnedCatalogs(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME")
				for _, c := range catalogs {
					fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
				}
				return w.Flush()
			},
		},
		catalogsCreateCmd(flags),
	)

	return cmd
}

func catalogsCreateCmd(flags *appFlags) *cobra.Command {
	var params apiclient.CreateCatalogParams

	cmd := &cobra.Command{
		Use:   "create <card-id>...",
		Short: "Create a catalog from existing cards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Authorize(viewDashboard); err != nil {
				return err
			}

			params.FlashcardIDs = args
			catalog, err := app.Client.CreateCatalog(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created catalog %d (%s)\n", catalog.ID, catalog.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "Catalog name")
	cmd.Flags().StringVar(&params.Description, "description", "", "Catalog description")
	cmd.Flags().Int64Var(&params.TargetLanguageID, "language", 0, "Target language ID")
	cmd.Flags().StringVar(&params.Visibility, "visibility", "private", "Catalog visibility (private or public)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func importCmd(flags *appFlags) *cobra.Command {
	var catalogIDs []int64
	var skipDuplicates bool

	cmd := &cobra.Command{
		Use:   "import <file.txt>",
		Short: "Import words from a text file as flashcards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Authorize(viewDashboard); err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			words, err := app.Client.ExtractWords(cmd.Context(), file.Name(), file)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No words found in file")
				return nil
			}

			if skipDuplicates {
				check, err := app.Client.CheckDuplicates(cmd.Context(), words)
				if err != nil {
					return err
				}
				if check.HasDuplicates {
					words = withoutWords(words, check.Duplicates)
					fmt.Fprintf(cmd.OutOrStdout(), "Skipping %d duplicate(s)\n", len(check.Duplicates))
				}
			}

			result, err := app.Client.ImportWords(cmd.Context(), words, catalogIDs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d word(s)\n", result.ImportedCount)
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&catalogIDs, "catalog", nil, "Catalog IDs to attach the new cards to")
	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", true, "Skip words that already exist as cards")
	return cmd
}

func waitlistCmd(flags *appFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waitlist",
		Short: "Work with the signup waitlist",
	}

	cmd.AddCommand(
		waitlistJoinCmd(flags),
		&cobra.Command{
			Use:   "list",
			Short: "List waitlist entries (admin)",
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer app.Close()

				if err := app.Authorize(viewAdmin); err != nil {
					return err
				}

				entries, err := app.Client.Waitlist(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tEMAIL\tAPPROVED")
				for _, e := range entries {
					fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", e.ID, e.Name, e.Email, e.Approved)
				}
				return w.Flush()
			},
		},
		waitlistApproveCmd(flags),
	)

	return cmd
}

func waitlistJoinCmd(flags *appFlags) *cobra.Command {
	var params apiclient.WaitlistParams

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Submit a waitlist entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Client.JoinWaitlist(cmd.Context(), params); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Waitlist entry submitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&params.Email, "email", "", "Your email")
	cmd.Flags().StringVar(&params.Password, "password", "", "Desired account password")
	cmd.Flags().StringVar(&params.Reason, "reason", "", "Why you want access")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func waitlistApproveCmd(flags *appFlags) *cobra.Command {
	var entryID int64

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve a waitlist entry (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Authorize(viewAdmin); err != nil {
				return err
			}
			if err := app.Client.ApproveWaitlistEntry(cmd.Context(), entryID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Entry approved, account created")
			return nil
		},
	}

	cmd.Flags().Int64Var(&entryID, "id", 0, "Waitlist entry ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func usersCmd(flags *appFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List user accounts (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Authorize(viewAdmin); err != nil {
				return err
			}

			users, err := app.Client.Users(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tUSERNAME\tADMIN")
			for _, u := range users {
				username := ""
				if u.Username != nil {
					username = *u.Username
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", u.ID, u.Email, username, u.IsAdmin)
			}
			return w.Flush()
		},
	}
}

func withoutWords(words, remove []string) []string {
	drop := make(map[string]struct{}, len(remove))
	for _, w := range remove {
		drop[w] = struct{}{}
	}
	kept := words[:0]
	for _, w := range words {
		if _, ok := drop[w]; !ok {
			kept = append(kept, w)
		}
	}
	return kept
}
