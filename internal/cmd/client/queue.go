package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/keelhq/opsq/internal/queue"
	"github.com/spf13/cobra"
)

// NewQueueCommand constructs the `queue` command group and subcommands.
func NewQueueCommand(baseURL BaseURLFunc) *cobra.Command {
	queueCmd := &cobra.Command{Use: "queue", Short: "Unified queue operations"}
	queueCmd.AddCommand(
		newQueueListCommand(baseURL),
		newQueueSummaryCommand(baseURL),
	)
	return queueCmd
}

// newQueueListCommand constructs the `queue list` subcommand.
func newQueueListCommand(baseURL BaseURLFunc) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the unified work queue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := url.Values{}
			for _, p := range []struct{ flag, param string }{
				{"org", "org"},
				{"pillar", "pillar"},
				{"urgency", "urgency"},
				{"state", "state"},
				{"filter", "filter"},
				{"cursor", "cursor"},
			} {
				if v, _ := cmd.Flags().GetString(p.flag); v != "" {
					q.Set(p.param, v)
				}
			}
			if v, _ := cmd.Flags().GetBool("mine"); v {
				q.Set("assigned_to_me", "true")
			}
			if v, _ := cmd.Flags().GetBool("unassigned"); v {
				q.Set("unassigned", "true")
			}
			if v, _ := cmd.Flags().GetInt("limit"); v > 0 {
				q.Set("limit", strconv.Itoa(v))
			}

			var page queue.Page
			if err := getJSON(baseURL()+"/v1/queue?"+q.Encode(), staffIDFromEnv(), &page); err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}

			out := cmd.OutOrStdout()
			for _, it := range page.Items {
				tier := urgencyColor(it.Urgency).Sprintf("%-8s", it.Urgency)
				fmt.Fprintf(out, "%s %-28s %-18s %-10s %s\n",
					tier, it.ID, it.CurrentState, it.TimeInStateHuman, it.RequiredAction)
			}
			s := page.Summary
			fmt.Fprintf(out, "\n%d items: %d critical, %d high, %d normal, %d low (%d unassigned)\n",
				s.Total, s.Critical, s.High, s.Normal, s.Low, s.Unassigned)
			if page.HasMore {
				fmt.Fprintf(out, "more available: --cursor %s\n", page.NextCursor)
			}
			return nil
		},
	}
	listCmd.Flags().String("org", "", "Organization scope (empty = server default)")
	listCmd.Flags().String("pillar", "", "Pillar filter: CONCIERGE|CAM")
	listCmd.Flags().String("urgency", "", "Urgency filter: CRITICAL|HIGH|NORMAL|LOW")
	listCmd.Flags().String("state", "", "Exact state filter")
	listCmd.Flags().String("filter", "", "CEL filter (server-side)")
	listCmd.Flags().Bool("mine", false, "Only items assigned to me (uses OPSQ_STAFF_ID)")
	listCmd.Flags().Bool("unassigned", false, "Only unassigned items")
	listCmd.Flags().Int("limit", 0, "Page size (0 = server default)")
	listCmd.Flags().String("cursor", "", "Resume cursor from a previous page")
	listCmd.Flags().Bool("json", false, "Emit raw JSON")
	return listCmd
}

// newQueueSummaryCommand constructs the `queue summary` subcommand.
func newQueueSummaryCommand(baseURL BaseURLFunc) *cobra.Command {
	sumCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard summary counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			org, _ := cmd.Flags().GetString("org")
			u := baseURL() + "/v1/queue/summary"
			if org != "" {
				u += "?org=" + url.QueryEscape(org)
			}
			var sum queue.SummaryCounts
			if err := getJSON(u, staffIDFromEnv(), &sum); err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "concierge: %d (intake %d, assessment %d, in progress %d, pending %d)\n",
				sum.ConciergeTotal, sum.Concierge.Intake, sum.Concierge.Assessment, sum.Concierge.InProgress, sum.Concierge.Pending)
			fmt.Fprintf(out, "cam: %d work orders, %d violations, %d arc requests\n",
				sum.CAM.OpenWorkOrders, sum.CAM.OpenViolations, sum.CAM.OpenARCRequests)
			fmt.Fprintf(out, "urgency: %s %s %s\n",
				urgencyColor(queue.UrgencyCritical).Sprintf("%d critical", sum.Urgency.Critical),
				urgencyColor(queue.UrgencyHigh).Sprintf("%d high", sum.Urgency.High),
				fmt.Sprintf("%d normal", sum.Urgency.Normal))
			return nil
		},
	}
	sumCmd.Flags().String("org", "", "Organization scope (empty = server default)")
	sumCmd.Flags().Bool("json", false, "Emit raw JSON")
	return sumCmd
}
