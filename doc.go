// Package swftranscoder extracts display-list symbols from compiled SWF
// movies into minimal standalone movies.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	swftranscoder/       Root package documentation
//	├── transcoder/      Symbol extraction: scan, graph resolution, sparse rewrite
//	├── swf/             Container framing, tag headers, bit-packed structures
//	├── errors/          Structured error types for debugging
//	└── cmd/swfextract/  CLI with batch and interactive modes
//
// # Quick Start
//
// Extract a symbol into a new movie:
//
//	data, _ := os.ReadFile("app.swf")
//	out, _ := os.Create("symbol.swf")
//	defer out.Close()
//
//	res, err := transcoder.Extract(data, []byte("assets.HeroSprite"), out, transcoder.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("bounds:", res.Bounds)
//
// The output movie contains only the definitions reachable from the named
// symbol, with frame ActionScript stripped, and exports the symbol as
// character 0 under a configurable class name.
package swftranscoder
