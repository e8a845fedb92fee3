// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lnrlnrleite/social/internal/types"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [business name]",
	Short: "Create a new tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenant types.Tenant
		body := map[string]string{"business_name": args[0]}
		if err := newAPIClient().do(cmd.Context(), "POST", "/api/v0/tenants", body, &tenant); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s)\n", types.Deref(tenant.BusinessName), tenant.ID)
		return nil
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch a tenant with decrypted credential fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenant map[string]interface{}
		if err := newAPIClient().do(cmd.Context(), "GET", "/api/v0/tenants/"+args[0], nil, &tenant); err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(tenant)
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenants []*types.Tenant
		if err := newAPIClient().do(cmd.Context(), "GET", "/api/v0/tenants", nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tBUSINESS_NAME\tNICHE\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, types.Deref(t.BusinessName), types.Deref(t.Niche), t.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var updateTenantCmd = &cobra.Command{
	Use:   "update [id] [json patch]",
	Short: "Update tenant settings from a JSON document (merge semantics)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch map[string]interface{}
		if err := json.Unmarshal([]byte(args[1]), &patch); err != nil {
			return fmt.Errorf("invalid JSON patch: %w", err)
		}

		var tenant types.Tenant
		if err := newAPIClient().do(cmd.Context(), "PATCH", "/api/v0/tenants/"+args[0], patch, &tenant); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", tenant.ID)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [id]",
	Short: "Generate a caption, visual prompt and image for a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		var result map[string]interface{}
		body := map[string]string{"topic": topic}
		if err := newAPIClient().do(cmd.Context(), "POST", "/api/v0/tenants/"+args[0]+"/generate", body, &result); err != nil {
			return fmt.Errorf("failed to generate content: %w", err)
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish [id]",
	Short: "Publish an image and caption to the tenant's Instagram account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageURL, _ := cmd.Flags().GetString("image-url")
		caption, _ := cmd.Flags().GetString("caption")

		var result map[string]interface{}
		body := map[string]string{"image_url": imageURL, "caption": caption}
		if err := newAPIClient().do(cmd.Context(), "POST", "/api/v0/tenants/"+args[0]+"/publish", body, &result); err != nil {
			return fmt.Errorf("failed to publish post: %w", err)
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	},
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic to focus the generated post on")
	publishCmd.Flags().String("image-url", "", "Public URL of the image to publish")
	publishCmd.Flags().String("caption", "", "Caption for the post")
	_ = publishCmd.MarkFlagRequired("image-url")
	_ = publishCmd.MarkFlagRequired("caption")

	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(getTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(updateTenantCmd)
	tenantCmd.AddCommand(generateCmd)
	tenantCmd.AddCommand(publishCmd)

	rootCmd.AddCommand(tenantCmd)
}
