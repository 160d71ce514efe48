package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/agency-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/agency-dashboard/internal/usecases/viewing"
)

var ErrUnknownCommand = errors.New("unknown command")

const browseHelp = `Commands:
  open <n|id>   drill into row n of the table (1-based) or the child with that id
  crumb <n>     jump to breadcrumb n (the number shown before the label)
  up            go to the parent level
  back          go to the previously visited level
  where         print the current path
  help          show this help
  quit          leave`

type BrowseCmd struct{}

func NewBrowseCmd() *BrowseCmd {
	return &BrowseCmd{}
}

func (c *BrowseCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Navigate the hierarchy interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(context.Background(), cmd)
			if err != nil {
				return err
			}

			session := &browseSession{
				viewer: env.viewer,
				ctrl:   navigating.NewController(env.resolver, env.viewer.RootLabel(), pathArg(args)),
				out:    cmd.OutOrStdout(),
			}
			return session.run(cmd.InOrStdin())
		},
	}
}

type browseSession struct {
	viewer *viewing.Service
	ctrl   *navigating.Controller
	out    io.Writer
}

func (s *browseSession) run(in io.Reader) error {
	if err := s.render(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		moved, quit, err := s.exec(fields[0], fields[1:])
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if moved {
			if err := s.render(); err != nil {
				return err
			}
		}
	}
}

// exec executa um comando e informa se a posição mudou
func (s *browseSession) exec(name string, args []string) (moved, quit bool, err error) {
	switch name {
	case "open", "o":
		if len(args) != 1 {
			return false, false, errors.New("usage: open <n|id>")
		}
		return true, false, s.open(args[0])
	case "crumb", "c":
		if len(args) != 1 {
			return false, false, errors.New("usage: crumb <n>")
		}
		return true, false, s.crumb(args[0])
	case "up", "u":
		return true, false, s.ctrl.Up()
	case "back", "b":
		return true, false, s.ctrl.Back()
	case "where", "w":
		fmt.Fprintln(s.out, s.ctrl.Path().URL())
		return false, false, nil
	case "help", "h", "?":
		fmt.Fprintln(s.out, browseHelp)
		return false, false, nil
	case "quit", "q", "exit":
		return false, true, nil
	default:
		return false, false, errors.Wrap(ErrUnknownCommand, name)
	}
}

func (s *browseSession) open(arg string) error {
	table := s.viewer.ChildTable(s.ctrl.Current(), s.ctrl.Activate)
	if table == nil {
		if s.ctrl.Current().Valid() {
			return navigating.ErrAtLeaf
		}
		return navigating.ErrNotResolved
	}

	if n, err := strconv.Atoi(arg); err == nil {
		return table.ActivateAt(n - 1)
	}
	return table.Activate(arg)
}

func (s *browseSession) crumb(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return errors.Wrapf(err, "crumb %q", arg)
	}
	crumbs := s.ctrl.Breadcrumbs()
	if n < 0 || n >= len(crumbs) {
		return errors.Errorf("crumb %d out of range", n)
	}
	return s.ctrl.JumpToCrumb(crumbs[n])
}

func (s *browseSession) render() error {
	view, err := s.viewer.LevelOf(s.ctrl.Current())
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	renderLevel(s.out, view)
	return nil
}
