package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docdistance/internal/domain"
	"docdistance/internal/frequency"
	"docdistance/internal/tfidf"
	"docdistance/internal/tui"
)

func newWordsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "words <word1> <word2>",
		Short: "Compare the letter frequencies of two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.newService()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range args {
				fmt.Fprintf(out, "%s: %s\n", w, formatFrequencies(frequency.CountLetters(w)))
			}
			res, err := svc.CompareWords(args[0], args[1])
			if err != nil {
				return err
			}
			printComparison(out, res)
			return nil
		},
	}
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <fileA> <fileB>",
		Short: "Compare the word frequencies of two documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.newService()
			if err != nil {
				return err
			}
			if _, err := svc.Ingest(args); err != nil {
				return err
			}
			a, b := filepath.Clean(args[0]), filepath.Clean(args[1])
			out := cmd.OutOrStdout()
			for _, label := range []string{a, b} {
				freq, err := svc.WordFrequencies(label)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", label, formatFrequencies(freq))
			}
			res, err := svc.Compare(a, b)
			if err != nil {
				return err
			}
			printComparison(out, res)
			return nil
		},
	}
}

func newTFCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tf <file>",
		Short: "Print the term frequency of every word in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.newService()
			if err != nil {
				return err
			}
			if _, err := svc.Ingest(args); err != nil {
				return err
			}
			tf, err := svc.TermFrequency(filepath.Clean(args[0]))
			if err != nil {
				return err
			}
			printScores(cmd.OutOrStdout(), "TF", tfidf.Sorted(tf), ctx.cfg.Report.Limit, ctx.cfg.Report.Precision)
			return nil
		},
	}
}

func newIDFCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "idf <files...>",
		Short: "Print the inverse document frequency of every word in a corpus",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.newService()
			if err != nil {
				return err
			}
			if _, err := svc.Ingest(args); err != nil {
				return err
			}
			idf, err := svc.InverseDocumentFrequency()
			if err != nil {
				return err
			}
			printScores(cmd.OutOrStdout(), "IDF", tfidf.Sorted(idf), ctx.cfg.Report.Limit, ctx.cfg.Report.Precision)
			return nil
		},
	}
}

func newTFIDFCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tfidf <target> <corpus files...>",
		Short: "Rank the words of a document by TF-IDF against a corpus",
		Long:  "Rank the words of a document by TF-IDF against a corpus. The target is added to the corpus when it is not already part of it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.newService()
			if err != nil {
				return err
			}
			if _, err := svc.Ingest(args); err != nil {
				return err
			}
			ranked, err := svc.Rank(filepath.Clean(args[0]))
			if err != nil {
				return err
			}
			printScores(cmd.OutOrStdout(), "TF-IDF", ranked, ctx.cfg.Report.Limit, ctx.cfg.Report.Precision)
			return nil
		},
	}
}

func newNearestCommand(ctx *commandContext) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "nearest <target> <corpus files...>",
		Short: "List corpus documents ordered by word similarity to the target",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.newService()
			if err != nil {
				return err
			}
			if _, err := svc.Ingest(args); err != nil {
				return err
			}
			results, err := svc.Nearest(filepath.Clean(args[0]), top)
			if err != nil {
				return err
			}
			tbl := newScoreTable("Document", "Similarity")
			for _, r := range results {
				tbl.add(r.Document.Label, r.Score, 2)
			}
			tbl.write(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "Number of documents to list (0 lists all)")
	return cmd
}

func newExploreCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "explore <files...>",
		Short: "Browse TF-IDF rankings and similarities interactively",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return errors.New("explore requires an interactive terminal")
			}
			svc, err := ctx.newService()
			if err != nil {
				return err
			}
			if _, err := svc.Ingest(args); err != nil {
				return err
			}
			m := tui.New(svc, ctx.tokenizer(), tui.Options{Limit: ctx.cfg.Report.Limit, Precision: ctx.cfg.Report.Precision})
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

func printComparison(out io.Writer, res domain.Comparison) {
	fmt.Fprintf(out, "similarity: %.2f\n", res.Similarity)
	fmt.Fprintf(out, "most frequent: %s\n", strings.Join(res.MostFrequent, ", "))
}

// printScores renders a ranking table. A positive limit keeps the tail of the
// ranking, where the highest scores sit.
func printScores(out io.Writer, column string, scores []domain.ScoredTerm, limit, precision int) {
	if limit > 0 && len(scores) > limit {
		scores = scores[len(scores)-limit:]
	}
	tbl := newScoreTable("Term", column)
	for _, st := range scores {
		tbl.add(st.Term, st.Score, precision)
	}
	tbl.write(out)
}

func formatFrequencies(freq domain.FrequencyMap) string {
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, freq[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
