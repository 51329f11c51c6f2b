// sheetgen-cli renders a spell view-model to stdout. Input is a view-model
// JSON file plus an optional lookup-table YAML bundle; output is HTML from
// the vanilla renderer or, with -renderer tui, an interactive prompt session
// that prints the resulting edit batch as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stormkeep/sheetgen/pkg/orchestrator"
	"github.com/stormkeep/sheetgen/pkg/render"
	"github.com/stormkeep/sheetgen/pkg/renderers/tui"
	"github.com/stormkeep/sheetgen/pkg/renderers/vanilla"
	"github.com/stormkeep/sheetgen/pkg/spell"
)

func main() {
	var (
		vmPath       = flag.String("view-model", "", "path to a spell view-model JSON file (required)")
		lookupsPath  = flag.String("lookups", "", "path to a lookup-table YAML bundle")
		rendererName = flag.String("renderer", "vanilla", "renderer to use: vanilla or tui")
		editable     = flag.Bool("editable", false, "enable trait-editor affordances")
		tab          = flag.String("tab", "", "initial tab: description, details or effects")
		styles       = flag.Bool("styles", false, "inline the default stylesheet (vanilla only)")
	)
	flag.Parse()

	if *vmPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	vmData, err := os.ReadFile(*vmPath)
	if err != nil {
		log.Fatalf("read view model: %v", err)
	}
	vm, err := spell.ParseViewModel(vmData)
	if err != nil {
		log.Fatalf("parse view model: %v", err)
	}

	var lookups spell.Lookups
	if *lookupsPath != "" {
		data, err := os.ReadFile(*lookupsPath)
		if err != nil {
			log.Fatalf("read lookups: %v", err)
		}
		lookups, err = spell.ParseLookups(data)
		if err != nil {
			log.Fatalf("parse lookups: %v", err)
		}
	}

	registry := render.NewRegistry()

	var vanillaOpts []vanilla.Option
	if *styles {
		vanillaOpts = append(vanillaOpts, vanilla.WithDefaultStyles())
	}
	htmlRenderer, err := vanilla.New(vanillaOpts...)
	if err != nil {
		log.Fatalf("new vanilla renderer: %v", err)
	}
	registry.MustRegister(htmlRenderer)

	tuiRenderer, err := tui.New()
	if err != nil {
		log.Fatalf("new tui renderer: %v", err)
	}
	registry.MustRegister(tuiRenderer)

	gen := orchestrator.New(orchestrator.WithRegistry(registry))

	output, err := gen.Render(context.Background(), orchestrator.Request{
		ViewModel: vm,
		Renderer:  *rendererName,
		RenderOptions: render.RenderOptions{
			Lookups:   lookups,
			Editable:  *editable,
			ActiveTab: render.Tab(*tab),
		},
	})
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	fmt.Println(string(output))
}
