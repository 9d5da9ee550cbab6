// Package gradient builds CSS background gradients from a type, an angle,
// and two to five color stops.
//
//	g, err := gradient.New(
//		gradient.WithType(gradient.Conic),
//		gradient.WithAngle(45),
//		gradient.WithStops(
//			gradient.Stop{Color: "#10b981", Position: 50},
//			gradient.Stop{Color: "#3b82f6", Position: 0},
//		),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(g.Declaration())
//	// background: conic-gradient(from 45deg, #3b82f6 0%, #10b981 50%);
//
// Stops are emitted in position order; the Gradient itself is never reordered.
// Colors are limited to #rgb and #rrggbb hex values.
package gradient
