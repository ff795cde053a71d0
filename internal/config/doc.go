// Package config provides scene file parsing for propwatch.
//
// Scenes are stored in propwatch.yml. This package handles loading,
// saving, and validating scene files, and converting shape entries to
// their scene package representation.
//
// # Scene File Structure
//
//	version: "1.0"
//	canvas:
//	  name: "demo"
//	  width: 800
//	  height: 600
//	shapes:
//	  - kind: rect
//	    color: "#e94f37"
//	    x: 40
//	    y: 40
//	    width: 120
//	    height: 80
//	script:
//	  - action: set-color
//	    shape: 0
//	    color: "#44bba4"
//	  - action: move
//	    shape: 1
//	    x: 260
//	    y: 140
//
// # Usage
//
//	cfg, err := config.Load("propwatch.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Canvas:", cfg.Canvas.Name)
package config
