package themes

import (
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/post-theme-analyzer/internal/common"
	"github.com/dtnitsch/post-theme-analyzer/pkg/help"
	themetable "github.com/dtnitsch/post-theme-analyzer/pkg/themes"
	"github.com/urfave/cli/v2"
)

// ThemesAction prints the theme table as a YAML keywords file, ready to be
// edited and passed back with --keywords-file.
func ThemesAction(c *cli.Context) error {
	return printThemes(c.String("keywords-file"), os.Stdout)
}

func printThemes(keywordsFile string, out io.Writer) error {
	table, err := common.LoadThemeTable(keywordsFile)
	if err != nil {
		return err
	}

	data, err := themetable.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal themes: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// QuickstartAction prints the YAML quick start.
func QuickstartAction(c *cli.Context) error {
	fmt.Print(help.ColdstartYAML)
	return nil
}
