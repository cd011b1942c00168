package continent

import (
	"math"

	"continent/internal/core"
)

// Metaball is a weighted disk contributing to the continent scalar field.
type Metaball struct {
	X, Y     float64
	Radius   float64
	Strength float64
}

const detailStretch = 1.5

// PlaceMetaballs lays out the spine, bulge and detail balls for one continent.
// The order of draws from rng is part of the output: the same seed always
// yields the same balls.
func PlaceMetaballs(cx, cy, radius float64, complexity int, verticalStretch, scaleFactor float64, rng core.Stream) []Metaball {
	radius *= scaleFactor

	spineCount := int(math.Floor(float64(complexity) * 0.6))
	bulgeCount := int(math.Floor(float64(complexity) * 0.3))
	detailCount := complexity - max(spineCount, 0) - max(bulgeCount, 0)
	if detailCount < 0 {
		detailCount = 0
	}
	balls := make([]Metaball, 0, max(complexity, 0))

	spineHeight := radius * verticalStretch * 2
	for i := 0; i < spineCount; i++ {
		t := float64(i) / float64(max(1, spineCount-1))
		y := cy - spineHeight/2 + spineHeight*t

		xOffset := math.Sin(t*math.Pi*3+rng.Next()*2) * radius * 0.3
		sizeVariation := 0.6 + rng.Next()*0.6

		ball := Metaball{}
		ball.X = cx + xOffset + (rng.Next()-0.5)*radius*0.2
		ball.Y = y + (rng.Next()-0.5)*radius*0.1
		ball.Radius = radius * sizeVariation * (0.7 + math.Sin(t*math.Pi)*0.3)
		ball.Strength = 0.8 + rng.Next()*0.2
		balls = append(balls, ball)
	}

	for i := 0; i < bulgeCount; i++ {
		t := rng.Next()
		y := cy - spineHeight/2 + spineHeight*t
		side := -1.0
		if rng.Next() > 0.5 {
			side = 1
		}
		ball := Metaball{Y: y}
		ball.X = cx + side*radius*(0.5+rng.Next()*0.5)
		ball.Radius = radius * (0.4 + rng.Next()*0.4)
		ball.Strength = 0.6 + rng.Next()*0.3
		balls = append(balls, ball)
	}

	for i := 0; i < detailCount; i++ {
		angle := rng.Next() * math.Pi * 2
		distance := radius * (0.3 + rng.Next()*0.7)
		ball := Metaball{
			X: cx + math.Cos(angle)*distance,
			Y: cy + math.Sin(angle)*distance*detailStretch,
		}
		ball.Radius = radius * (0.2 + rng.Next()*0.3)
		ball.Strength = 0.5 + rng.Next()*0.3
		balls = append(balls, ball)
	}
	return balls
}

// Accumulate overwrites every field cell with the summed cubic falloff of all
// balls whose influence disk (twice the radius) covers it. Values are not
// normalized.
func Accumulate(field *core.ScalarField, balls []Metaball) {
	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			value := 0.0
			for _, ball := range balls {
				reach := ball.Radius * 2
				if reach <= 0 {
					continue
				}
				distance := math.Hypot(float64(x)-ball.X, float64(y)-ball.Y)
				if distance < reach {
					falloff := 1 - distance/reach
					value += ball.Strength * falloff * falloff * falloff
				}
			}
			field.Values[y*field.W+x] = value
		}
	}
}

// BuildShape places metaballs around (cx, cy) and accumulates them into field.
func BuildShape(field *core.ScalarField, cx, cy, radius float64, complexity int, verticalStretch, scaleFactor float64, rng core.Stream) []Metaball {
	balls := PlaceMetaballs(cx, cy, radius, complexity, verticalStretch, scaleFactor, rng)
	Accumulate(field, balls)
	return balls
}
