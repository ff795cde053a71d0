// Package scene provides an observed shape graph built on propwatch.
//
// A Shape owns observed members (color, opacity, visibility, coordinates,
// size) wired to a single Node, so everything a shape does funnels into one
// upward binding. A Canvas owns a replaceable collection of shapes and a
// redraw sink; adding a shape to a canvas reroutes the shape's
// notifications to that sink, and mutating any member of any held shape
// asks the canvas to redraw.
//
//	canvas := scene.NewCanvas("main", redraw,
//	    scene.NewShape(scene.DefaultShapeConfig(), propwatch.Discard),
//	)
//	shape, _ := canvas.Shape(0)
//	shape.SetColor("#00ff00") // redraw notified
package scene
