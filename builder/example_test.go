package builder_test

import (
	"fmt"
	"os"

	"github.com/Tobionecenobi/SEB/builder"
	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/symbols"
	"github.com/Tobionecenobi/SEB/world"
)

// ExampleBuildWorld wraps a chain of three rods and draws it.
func ExampleBuildWorld() {
	w, err := builder.BuildWorld(
		[]world.Option{world.WithRegistry(symbols.NewRegistry())},
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithTag("rod")},
		builder.Chain(subunit.KindThinRod, 3, "rod", "end1", "end2"),
		builder.Wrap("trimer"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = w.FolderPrint(os.Stdout, "trimer")
	pairs, _ := w.CountPairs("trimer")
	fmt.Println("pairs:", pairs)
	// Output:
	// └──trimer
	//     ├──rodA
	//     ├──rodB
	//     └──rodC
	// pairs: 9
}

// ExampleParseYAML replays a two step description.
func ExampleParseYAML() {
	doc, err := builder.ParseYAML([]byte(`
steps:
  - {op: add, type: ThinRod, name: A}
  - {op: link, type: ThinRod, new: B.end1, existing: A.middle}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	w, err := builder.BuildWorld([]world.Option{world.WithRegistry(symbols.NewRegistry())}, nil, builder.Describe(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = w.WriteLinks(os.Stdout)
	// Output:
	//                                           A.middle<--->B.end1
}
