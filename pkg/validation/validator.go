package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// validate is a singleton validator instance
var validate *validator.Validate

// Edge-list input limits; keep in sync with the EdgeListRequest tags.
const (
	MaxVertices = 4096
	MaxEdges    = 32768
)

func init() {
	validate = validator.New()
}

// EdgeRequest is one directed edge of an edge-list input
type EdgeRequest struct {
	From   int     `json:"from" yaml:"from" validate:"min=0"`
	To     int     `json:"to" yaml:"to" validate:"min=0"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"`
}

// EdgeListRequest describes a whole graph as a vertex count and its edges
type EdgeListRequest struct {
	Vertices int           `json:"vertices" yaml:"vertices" validate:"min=0,max=4096"`
	Edges    []EdgeRequest `json:"edges" yaml:"edges" validate:"max=32768,dive"`
}

// Struct validates v against its struct tags, returning the first failure
// in a readable form.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateEdgeRequest validates a single edge against a graph of vertices
// vertices.
func ValidateEdgeRequest(req *EdgeRequest, vertices int) error {
	if req == nil {
		return errors.New("edge request cannot be nil")
	}

	if err := Struct(req); err != nil {
		return err
	}

	if req.From >= vertices {
		return fmt.Errorf("From: vertex %d out of range [0, %d)", req.From, vertices)
	}
	if req.To >= vertices {
		return fmt.Errorf("To: vertex %d out of range [0, %d)", req.To, vertices)
	}
	if math.IsInf(req.Weight, 0) || math.IsNaN(req.Weight) {
		return fmt.Errorf("Weight: must be finite, got %v", req.Weight)
	}
	return nil
}

// ValidateEdgeList validates the request and every edge in it.
func ValidateEdgeList(req *EdgeListRequest) error {
	if req == nil {
		return errors.New("edge list cannot be nil")
	}

	if err := Struct(req); err != nil {
		return err
	}

	for i := range req.Edges {
		if err := ValidateEdgeRequest(&req.Edges[i], req.Vertices); err != nil {
			return fmt.Errorf("Edges[%d]: %w", i, err)
		}
	}
	return nil
}

// BuildDigraph validates req and builds the graph it describes.
func BuildDigraph(req *EdgeListRequest) (*graph.Digraph, error) {
	if err := ValidateEdgeList(req); err != nil {
		return nil, err
	}

	g := graph.NewDigraph(req.Vertices)
	for _, e := range req.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
