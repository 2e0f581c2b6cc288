// Command overlayctl runs a Boolean overlay operation on two polygon sets
// read from JSON and writes the resulting shapes to stdout as JSON.
// Grounded on mikenye-geom2d/cmd/genlinesegments/main.go's urfave/cli/v3
// command-and-flags shape.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	engine "github.com/go-overlay/overlay/engine"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "overlayctl",
		Usage:     "Run a Boolean polygon overlay operation",
		UsageText: "overlayctl --subject subject.json --clip clip.json --op union --fill nonzero",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "subject",
				Usage:    "path to a JSON file containing the subject contours ([[ [x,y], ... ], ...])",
				Required: true,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "clip",
				Usage:    "path to a JSON file containing the clip contours",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "op",
				Usage:    "overlay rule: subject, clip, intersect, union, difference, inverse-difference, xor",
				Value:    "union",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "fill",
				Usage:    "fill rule: evenodd, nonzero, positive, negative",
				Value:    "nonzero",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "out-direction",
				Usage:    "winding direction of outer boundaries: ccw, cw",
				Value:    "ccw",
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "min-area",
				Usage:    "drop faces whose absolute doubled area falls below this",
				Value:    0,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	subject, err := readContours(cmd.String("subject"))
	if err != nil {
		return fmt.Errorf("reading subject: %w", err)
	}

	var clip engine.Contours
	if path := cmd.String("clip"); path != "" {
		clip, err = readContours(path)
		if err != nil {
			return fmt.Errorf("reading clip: %w", err)
		}
	}

	fillRule, err := parseFillRule(cmd.String("fill"))
	if err != nil {
		return err
	}
	overlayRule, err := parseOverlayRule(cmd.String("op"))
	if err != nil {
		return err
	}
	outDir, err := parseOutDirection(cmd.String("out-direction"))
	if err != nil {
		return err
	}

	shapes, err := engine.RunOverlay(subject, clip, fillRule, overlayRule, outDir, cmd.Float("min-area"))
	if err != nil {
		return fmt.Errorf("overlay: %w", err)
	}

	return json.NewEncoder(os.Stdout).Encode(shapesToJSON(shapes))
}

func readContours(path string) (engine.Contours, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw [][][2]int32
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(engine.Contours, len(raw))
	for i, c := range raw {
		contour := make(engine.Contour, len(c))
		for j, p := range c {
			contour[j] = engine.IntPoint{X: p[0], Y: p[1]}
		}
		out[i] = contour
	}
	return out, nil
}

func shapesToJSON(shapes engine.Shapes) [][][][2]int32 {
	out := make([][][][2]int32, len(shapes))
	for i, shape := range shapes {
		out[i] = make([][][2]int32, len(shape))
		for j, contour := range shape {
			out[i][j] = make([][2]int32, len(contour))
			for k, p := range contour {
				out[i][j][k] = [2]int32{p.X, p.Y}
			}
		}
	}
	return out
}

func parseFillRule(s string) (engine.FillRule, error) {
	switch s {
	case "evenodd":
		return engine.EvenOdd, nil
	case "nonzero":
		return engine.NonZero, nil
	case "positive":
		return engine.Positive, nil
	case "negative":
		return engine.Negative, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func parseOutDirection(s string) (engine.OutDirection, error) {
	switch s {
	case "ccw":
		return engine.CounterClockwise, nil
	case "cw":
		return engine.Clockwise, nil
	default:
		return 0, fmt.Errorf("unknown out-direction %q", s)
	}
}

func parseOverlayRule(s string) (engine.OverlayRuleKind, error) {
	switch s {
	case "subject":
		return engine.RuleSubject, nil
	case "clip":
		return engine.RuleClip, nil
	case "intersect":
		return engine.RuleIntersect, nil
	case "union":
		return engine.RuleUnion, nil
	case "difference":
		return engine.RuleDifference, nil
	case "inverse-difference":
		return engine.RuleInverseDifference, nil
	case "xor":
		return engine.RuleXor, nil
	default:
		return 0, fmt.Errorf("unknown overlay rule %q", s)
	}
}
