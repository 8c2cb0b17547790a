package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dzjyyds666/dentry/parse/desktop"
	"github.com/dzjyyds666/dentry/pkg"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ParseParams struct {
	Find   string `json:"find"`   // 查找的key
	Group  string `json:"group"`  // key 所在的 group
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	Format string `json:"format"` // json / yaml / toml
}

var parseParams *ParseParams

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a desktop entry file",
	Long:  "Parse a desktop entry file and print either one localized value (--find) or the whole document.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseRun,
}

func init() {
	parseParams = &ParseParams{}
	parseCmd.Flags().StringVarP(&parseParams.Find, "find", "f", "", "key to look up")
	parseCmd.Flags().StringVarP(&parseParams.Group, "group", "g", desktop.MainGroup, "group to look the key up in")
	parseCmd.Flags().StringVarP(&parseParams.Input, "input", "i", "", "input file path")
	parseCmd.Flags().StringVarP(&parseParams.Output, "output", "o", "", "output path")
	parseCmd.Flags().StringVar(&parseParams.Format, "format", "json", "document output format: json, yaml or toml")
}

func parseRun(cmd *cobra.Command, args []string) error {
	input := parseParams.Input
	if input == "" && len(args) == 1 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("no input file path")
	}

	exist, err := pkg.CheckFileExist(input)
	if err != nil {
		return fmt.Errorf("check file exist: %w", err)
	}
	if !exist {
		return fmt.Errorf("input file %s does not exist", input)
	}

	src, err := pkg.ReadTextFile(input)
	if err != nil {
		return err
	}
	entry, err := desktop.ParseEntry(src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}
	logger.Debug("parsed desktop entry", "path", input, "groups", len(entry.Groups()))

	var buf bytes.Buffer
	if err := renderParse(&buf, entry); err != nil {
		return err
	}

	if parseParams.Output == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	return writeOutput(parseParams.Output, buf.Bytes())
}

// renderParse writes either the looked up value or the whole document to w.
func renderParse(w io.Writer, entry *desktop.Entry) error {
	if parseParams.Find == "" {
		return encodeDocument(w, entry, parseParams.Format)
	}

	locale, err := resolveLocale(cfg)
	if err != nil {
		return err
	}
	if locale != nil {
		logger.Debug("resolved locale", "locale", locale.String())
	}

	v, ok := entry.GroupLocalizedGet(parseParams.Group, parseParams.Find, locale)
	if !ok {
		return fmt.Errorf("key %q not found in group %q", parseParams.Find, parseParams.Group)
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

func writeOutput(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func encodeDocument(w io.Writer, entry *desktop.Entry, format string) error {
	doc := make(map[string]map[string]string)
	for _, group := range entry.Groups() {
		body := make(map[string]string)
		for _, key := range entry.GroupKeys(group) {
			body[key], _ = entry.GroupGet(group, key)
		}
		doc[group] = body
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
