// Package wizard runs the interactive filter picker used by the explore
// command.
package wizard

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/testforge/testforge/internal/filter"
	"github.com/testforge/testforge/internal/models"
)

// selections holds the raw values bound to the form fields.
type selections struct {
	View       string
	LLM        string
	PromptType string
	TestType   string
	Complexity string
}

func selectionsFrom(s filter.State) selections {
	sel := selections{
		View:       string(s.View),
		LLM:        s.LLM,
		PromptType: s.PromptType,
		TestType:   s.TestType,
		Complexity: s.Complexity,
	}
	if sel.View == "" {
		sel.View = string(models.ViewTestSet)
	}
	for _, p := range []*string{&sel.LLM, &sel.PromptType, &sel.TestType, &sel.Complexity} {
		if *p == "" {
			*p = filter.All
		}
	}
	return sel
}

// state converts form values back to a filter, keeping the language of base.
func (sel selections) state(base filter.State) filter.State {
	s := base
	s.View = models.View(sel.View)
	s.Set(models.DimensionLLM, sel.LLM)
	s.Set(models.DimensionPrompt, sel.PromptType)
	s.Set(models.DimensionTestType, sel.TestType)
	s.Set(models.DimensionComplexity, sel.Complexity)
	return s
}

// dimensionOptions lists "All" followed by the known values of dim, keyed by
// display label.
func dimensionOptions(dim models.Dimension) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("All", filter.All)}
	for _, o := range models.OptionsFor(dim) {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}
	return opts
}

func viewOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Test set metrics (CSR, RSR, SVR)", string(models.ViewTestSet)),
		huh.NewOption("Test case metrics (FC, coverage)", string(models.ViewTestCase)),
		huh.NewOption("Outcomes (O1 to O4)", string(models.ViewOutcomes)),
	}
}

// RunFilterWizard runs an interactive huh form to pick the metric view and
// the filter predicates, starting from initial.
func RunFilterWizard(in io.Reader, out io.Writer, initial filter.State) (filter.State, error) {
	sel := selectionsFrom(initial)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Metric view").
				Options(viewOptions()...).
				Value(&sel.View),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("LLM").
				Options(dimensionOptions(models.DimensionLLM)...).
				Value(&sel.LLM),
			huh.NewSelect[string]().
				Title("Prompt strategy").
				Options(dimensionOptions(models.DimensionPrompt)...).
				Value(&sel.PromptType),
			huh.NewSelect[string]().
				Title("Test type").
				Options(dimensionOptions(models.DimensionTestType)...).
				Value(&sel.TestType),
			huh.NewSelect[string]().
				Title("Complexity").
				Options(dimensionOptions(models.DimensionComplexity)...).
				Value(&sel.Complexity),
		).Description(fmt.Sprintf("Source language: %s", initial.Language)),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return filter.State{}, fmt.Errorf("wizard failed: %w", err)
	}

	return sel.state(initial), nil
}
