package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chaz8081/proboot/internal/cli/ui"
	"github.com/chaz8081/proboot/internal/config"
	"github.com/chaz8081/proboot/internal/registry"
	"github.com/chaz8081/proboot/pkg/schema"
)

// ErrInputClosed is returned when stdin ends before every question is answered.
var ErrInputClosed = errors.New("input closed before the prompt was answered")

// Prompter asks the user for a BootstrapRequest.
type Prompter interface {
	Prompt(ctx context.Context) (schema.BootstrapRequest, error)
}

// newPrompter picks the form prompter only when configured and attached to a
// terminal.
func newPrompter(cmd *cobra.Command, cfg *config.Config, reg *registry.Registry) Prompter {
	var types []schema.ProjectType
	for _, tmpl := range reg.List() {
		types = append(types, tmpl.Type())
	}
	if cfg.Prompt.Style == config.PromptForm && isInteractiveTTY() {
		return &formPrompter{in: cmd.InOrStdin(), out: cmd.OutOrStdout(), reg: reg}
	}
	return newPlainPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), types)
}

// plainPrompter asks line by line. Invalid answers re-prompt; they never end
// the run.
type plainPrompter struct {
	in    *bufio.Reader
	out   io.Writer
	types []schema.ProjectType
}

func newPlainPrompter(in io.Reader, out io.Writer, types []schema.ProjectType) *plainPrompter {
	return &plainPrompter{in: bufio.NewReader(in), out: out, types: types}
}

func (p *plainPrompter) Prompt(_ context.Context) (schema.BootstrapRequest, error) {
	name, err := p.askName()
	if err != nil {
		return schema.BootstrapRequest{}, err
	}
	t, err := p.askType()
	if err != nil {
		return schema.BootstrapRequest{}, err
	}
	initVCS, err := p.askVCS()
	if err != nil {
		return schema.BootstrapRequest{}, err
	}
	return schema.BootstrapRequest{Name: name, Type: t, InitVersionControl: initVCS}, nil
}

// readLine returns the next line without surrounding whitespace. A final line
// without a newline still counts; after that the input is closed.
func (p *plainPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *plainPrompter) askName() (string, error) {
	fmt.Fprint(p.out, "Enter the project name: ")
	for {
		name, err := p.readLine()
		if err != nil {
			return "", err
		}
		if name == "" {
			fmt.Fprint(p.out, "Project name cannot be empty. Please enter a valid name: ")
			continue
		}
		if err := schema.ValidateName(name); err != nil {
			fmt.Fprintf(p.out, "%v. Please enter a valid name: ", err)
			continue
		}
		return name, nil
	}
}

func (p *plainPrompter) askType() (schema.ProjectType, error) {
	fmt.Fprintln(p.out, "Select the project type:")
	for i, t := range p.types {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, t)
	}
	for {
		fmt.Fprint(p.out, "Enter the number of your choice [default: 1]: ")
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = "1"
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if n < 1 || n > len(p.types) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(p.types))
			continue
		}
		return p.types[n-1], nil
	}
}

// askVCS treats every answer except "n" as yes.
func (p *plainPrompter) askVCS() (bool, error) {
	fmt.Fprint(p.out, "Initialize git repository? (y/n) [default: y]: ")
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) != "n", nil
}

// formPrompter asks through huh forms and the ui picker.
type formPrompter struct {
	in  io.Reader
	out io.Writer
	reg *registry.Registry
}

func (p *formPrompter) Prompt(ctx context.Context) (schema.BootstrapRequest, error) {
	var name string
	nameInput := huh.NewInput().
		Title("Project name").
		Description("Directory to create; also used as the package name").
		Validate(schema.ValidateName).
		Value(&name)
	if err := p.run(ctx, nameInput); err != nil {
		return schema.BootstrapRequest{}, err
	}

	picked, err := p.pick()
	if err != nil {
		return schema.BootstrapRequest{}, err
	}

	initVCS := true
	confirm := huh.NewConfirm().
		Title("Initialize git repository?").
		Affirmative("Yes").
		Negative("No").
		Value(&initVCS)
	if err := p.run(ctx, confirm); err != nil {
		return schema.BootstrapRequest{}, err
	}

	return schema.BootstrapRequest{
		Name:               strings.TrimSpace(name),
		Type:               picked,
		InitVersionControl: initVCS,
	}, nil
}

func (p *formPrompter) pick() (schema.ProjectType, error) {
	var options []ui.Option
	for _, tmpl := range p.reg.List() {
		options = append(options, ui.Option{
			Value:       string(tmpl.Type()),
			Label:       string(tmpl.Type()),
			Description: tmpl.Description(),
		})
	}
	picked, err := pickType("Select the project type", options, p.in, p.out)
	if err != nil {
		return "", err
	}
	return schema.ProjectType(picked), nil
}

func (p *formPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithInput(p.in).WithOutput(p.out)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ui.ErrCancelled
		}
		return err
	}
	return nil
}
