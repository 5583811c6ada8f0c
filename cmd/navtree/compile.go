package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/go-arcade/navtree/internal/engine/config"
	"github.com/go-arcade/navtree/internal/engine/service"
	"github.com/go-arcade/navtree/internal/engine/source"
	"github.com/go-arcade/navtree/internal/pkg/menutree"
)

type compileOptions struct {
	file         string
	manifest     string
	moduleRoot   string
	nameStrategy string
	collapseRule string
	permissions  string
	output       string
}

// newCompileCmd 离线编译菜单文件，输出路由树、菜单树和绑定报告
func newCompileCmd() *cobra.Command {
	opts := &compileOptions{}
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a menu list file (yaml or json) into routes and menus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "menu list file, yaml or json")
	flags.StringVarP(&opts.manifest, "manifest", "m", "", "view module manifest file")
	flags.StringVar(&opts.moduleRoot, "module-root", menutree.DefaultModuleRoot, "view module root prefix")
	flags.StringVar(&opts.nameStrategy, "name-strategy", string(menutree.NameIdBased), "route name strategy: id or path")
	flags.StringVar(&opts.collapseRule, "collapse-rule", string(menutree.CollapseSingleChild), "menu collapse rule: single-child or empty-children")
	flags.StringVarP(&opts.permissions, "permissions", "p", "", "comma separated granted permissions, empty means no filtering")
	flags.StringVarP(&opts.output, "output", "o", "", "output file, default stdout")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runCompile(cmd *cobra.Command, opts *compileOptions) error {
	records, err := source.LoadRecordsFile(opts.file)
	if err != nil {
		return err
	}

	conf := &config.MenuConfig{
		Source:       config.SourceFile,
		File:         opts.file,
		ManifestFile: opts.manifest,
		ModuleRoot:   opts.moduleRoot,
		NameStrategy: opts.nameStrategy,
		CollapseRule: opts.collapseRule,
	}
	conf.SetDefaults()
	pipeline, err := service.NewPipeline(conf)
	if err != nil {
		return err
	}

	var result *menutree.Result
	if opts.permissions == "" {
		result = pipeline.Run(records)
	} else {
		result = pipeline.RunFiltered(records, splitPermissions(opts.permissions))
	}

	out, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if opts.output != "" {
		return os.WriteFile(opts.output, append(out, '\n'), 0o644)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func splitPermissions(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
