package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"music-storefront/internal/commenttree"
	"music-storefront/internal/domain"
)

var (
	commentsMaxDepth    int
	commentsMaxChildren int
	commentsPlain       bool
)

var commentsCmd = &cobra.Command{
	Use:   "comments <product-id>",
	Short: "Print the comment tree of a product",
	Long: `Fetch the comments of a product from the shop API and print them as the
product page would show them.

Replies below --max-depth and beyond --max-children per node are cut and
the parent is marked with "+ more".`,
	Args: cobra.ExactArgs(1),
	RunE: runComments,
}

func init() {
	defaults := commenttree.DefaultOptions()
	commentsCmd.Flags().IntVar(&commentsMaxDepth, "max-depth", defaults.MaxDepth, "deepest level shown, roots are level 1")
	commentsCmd.Flags().IntVar(&commentsMaxChildren, "max-children", defaults.MaxChildrenPerNode, "replies shown per comment")
	commentsCmd.Flags().BoolVar(&commentsPlain, "plain", false, "disable colors")
}

func runComments(cmd *cobra.Command, args []string) error {
	repo, err := newCommentRepository()
	if err != nil {
		return err
	}

	comments, err := repo.ListByProduct(cmd.Context(), domain.ID(args[0]))
	if err != nil {
		return fmt.Errorf("fetch comments: %w", err)
	}

	forest := commenttree.Build(comments, commenttree.Options{
		MaxDepth:           commentsMaxDepth,
		MaxChildrenPerNode: commentsMaxChildren,
	})

	printer := newTreePrinter(!commentsPlain)
	fmt.Fprintln(cmd.OutOrStdout(), printer.Render(args[0], len(comments), forest))
	return nil
}
