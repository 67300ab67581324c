package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/keelhq/opsq/internal/queue"
	"github.com/spf13/cobra"
)

// NewItemCommand constructs the `item` command group and subcommands.
func NewItemCommand(baseURL BaseURLFunc) *cobra.Command {
	itemCmd := &cobra.Command{Use: "item", Short: "Raw work-item operations"}
	itemCmd.AddCommand(
		newItemAddCommand(baseURL),
		newItemRmCommand(baseURL),
	)
	return itemCmd
}

// newItemAddCommand constructs the `item add` subcommand. Items are
// supplied either via flags (one item) or as a JSON file of raw
// records with --file (use - for stdin).
func newItemAddCommand(baseURL BaseURLFunc) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Ingest raw work items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var items []queue.RawItem
			if file, _ := cmd.Flags().GetString("file"); file != "" {
				b, err := readFileOrStdin(file)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(b, &items); err != nil {
					return fmt.Errorf("parse %s: %w", file, err)
				}
			} else {
				it, err := itemFromFlags(cmd)
				if err != nil {
					return err
				}
				items = []queue.RawItem{it}
			}

			body, _ := json.Marshal(map[string]any{"items": items})
			resp, err := http.Post(baseURL()+"/v1/items", "application/json", bytes.NewReader(body))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusCreated {
				return serverError(resp)
			}
			var stored struct {
				Items []queue.RawItem `json:"items"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
				return err
			}
			for _, it := range stored.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "stored %s:%s\n", it.ItemType, it.ItemID)
			}
			return nil
		},
	}
	addCmd.Flags().String("file", "", "JSON file with an array of raw items (- for stdin)")
	addCmd.Flags().String("org", "", "Organization ID")
	addCmd.Flags().String("type", "", "Item type: CONCIERGE_CASE|WORK_ORDER|VIOLATION|ARC_REQUEST")
	addCmd.Flags().String("id", "", "Source item ID (generated when empty)")
	addCmd.Flags().String("title", "", "Item title")
	addCmd.Flags().String("status", "", "Current status")
	addCmd.Flags().String("priority", "", "Declared priority")
	addCmd.Flags().String("property", "", "Property name")
	addCmd.Flags().String("assignee", "", "Assigned staff ID")
	return addCmd
}

func itemFromFlags(cmd *cobra.Command) (queue.RawItem, error) {
	org, _ := cmd.Flags().GetString("org")
	typ, _ := cmd.Flags().GetString("type")
	if org == "" || typ == "" {
		return queue.RawItem{}, fmt.Errorf("--org and --type are required (or use --file)")
	}
	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	property, _ := cmd.Flags().GetString("property")
	assignee, _ := cmd.Flags().GetString("assignee")
	now := time.Now().UTC()
	return queue.RawItem{
		ItemType:       queue.ItemType(typ),
		ItemID:         id,
		OrganizationID: org,
		Title:          title,
		Status:         status,
		Priority:       priority,
		PropertyName:   property,
		AssignedToID:   assignee,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// newItemRmCommand constructs the `item rm` subcommand.
func newItemRmCommand(baseURL BaseURLFunc) *cobra.Command {
	rmCmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove one raw work item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			org, _ := cmd.Flags().GetString("org")
			typ, _ := cmd.Flags().GetString("type")
			id, _ := cmd.Flags().GetString("id")
			if org == "" || typ == "" || id == "" {
				return fmt.Errorf("--org, --type and --id are required")
			}
			q := url.Values{}
			q.Set("org", org)
			q.Set("type", typ)
			q.Set("id", id)
			req, err := http.NewRequest(http.MethodDelete, baseURL()+"/v1/items?"+q.Encode(), nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusNoContent {
				return serverError(resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
	rmCmd.Flags().String("org", "", "Organization ID")
	rmCmd.Flags().String("type", "", "Item type")
	rmCmd.Flags().String("id", "", "Source item ID")
	return rmCmd
}
