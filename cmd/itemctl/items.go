package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
)

// errArchiveFailed is returned when at least one item could not be archived.
// The per-item outcomes are still printed.
var errArchiveFailed = errors.New("some items were not archived")

func newCollectionsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List every database the integration can see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.NewService(cmd.Context(), a)
			if err != nil {
				return writeErr(cmd, err)
			}

			collections, err := svc.ListCollections(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, dto.ToCollectionResponses(collections))
		},
	}
}

func newItemsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Inspect and archive items",
	}
	cmd.AddCommand(newItemsListCmd(a))
	cmd.AddCommand(newItemsArchiveCmd(a))
	return cmd
}

func newItemsListCmd(a *App) *cobra.Command {
	var (
		readOnly bool
		view     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items as raw properties or as the public projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if view && readOnly {
				return writeErr(cmd, errors.New("--view and --read-only cannot be combined"))
			}

			svc, err := a.NewService(cmd.Context(), a)
			if err != nil {
				return writeErr(cmd, err)
			}

			if view {
				list, err := svc.ListViews(cmd.Context())
				if err != nil {
					return writeErr(cmd, err)
				}
				for _, r := range list.Rejected {
					fmt.Fprintf(cmd.ErrOrStderr(), "rejected %s: %v\n", r.ItemID, r.Err)
				}
				return writeOut(cmd, a, dto.ToViewListResponse(list))
			}

			items, err := svc.ListItems(cmd.Context(), readOnly)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, dto.ToItemListResponse(items))
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Include computed properties")
	cmd.Flags().BoolVar(&view, "view", false, "Print the validated public projection")

	return cmd
}

func newItemsArchiveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>...",
		Short: "Archive one or more items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.NewService(cmd.Context(), a)
			if err != nil {
				return writeErr(cmd, err)
			}

			results := svc.ArchiveItems(cmd.Context(), args)
			if err := writeOut(cmd, a, dto.ToArchiveResultResponses(results)); err != nil {
				return err
			}

			for _, r := range results {
				if r.Err != nil {
					return errArchiveFailed
				}
			}
			return nil
		},
	}
}
