package graphql

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/catalogops/lineage-engine/pkg/analysis"
	"github.com/catalogops/lineage-engine/pkg/lineage"
)

// Service is the engine pipeline the resolvers query. The HTTP API server
// implements it; resolvers never talk to the catalog directly.
type Service interface {
	BuildGraph(ctx context.Context, guid string, direction lineage.Direction, depth int) (*lineage.Graph, error)
}

var positionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Position",
	Fields: graphql.Fields{
		"x": &graphql.Field{Type: graphql.Float},
		"y": &graphql.Field{Type: graphql.Float},
	},
})

var nodeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LineageNode",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"label":           &graphql.Field{Type: graphql.String},
		"type":            &graphql.Field{Type: graphql.String},
		"entityType":      &graphql.Field{Type: graphql.String},
		"isCenterNode":    &graphql.Field{Type: graphql.Boolean},
		"hasUpstream":     &graphql.Field{Type: graphql.Boolean},
		"hasDownstream":   &graphql.Field{Type: graphql.Boolean},
		"upstreamCount":   &graphql.Field{Type: graphql.Int},
		"downstreamCount": &graphql.Field{Type: graphql.Int},
		"position":        &graphql.Field{Type: positionType},
	},
})

var edgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LineageEdge",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.String},
		"source":           &graphql.Field{Type: graphql.String},
		"target":           &graphql.Field{Type: graphql.String},
		"relationshipType": &graphql.Field{Type: graphql.String},
		"isUpstream":       &graphql.Field{Type: graphql.Boolean},
	},
})

var graphType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LineageGraph",
	Fields: graphql.Fields{
		"nodes":        &graphql.Field{Type: graphql.NewList(nodeType)},
		"edges":        &graphql.Field{Type: graphql.NewList(edgeType)},
		"centerNodeId": &graphql.Field{Type: graphql.String},
	},
})

var coverageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CoverageMetrics",
	Fields: graphql.Fields{
		"totalNodes":         &graphql.Field{Type: graphql.Int},
		"assetNodes":         &graphql.Field{Type: graphql.Int},
		"processNodes":       &graphql.Field{Type: graphql.Int},
		"upstreamOnly":       &graphql.Field{Type: graphql.Int},
		"downstreamOnly":     &graphql.Field{Type: graphql.Int},
		"bothDirections":     &graphql.Field{Type: graphql.Int},
		"orphaned":           &graphql.Field{Type: graphql.Int},
		"coveragePercentage": &graphql.Field{Type: graphql.Int},
		"avgUpstreamCount":   &graphql.Field{Type: graphql.Float},
		"avgDownstreamCount": &graphql.Field{Type: graphql.Float},
	},
})

func directionArg(p graphql.ResolveParams) lineage.Direction {
	if v, ok := p.Args["direction"].(string); ok && v != "" {
		return lineage.Direction(v)
	}
	return lineage.DirectionBoth
}

func depthArg(p graphql.ResolveParams) int {
	if v, ok := p.Args["depth"].(int); ok && v > 0 {
		return v
	}
	return 21
}

func guidArg(p graphql.ResolveParams) (string, error) {
	guid, ok := p.Args["guid"].(string)
	if !ok || guid == "" {
		return "", errors.New("guid argument is required")
	}
	return guid, nil
}

// BuildSchema wires the lineage query surface over the given service
func BuildSchema(svc Service) (graphql.Schema, error) {
	lineageArgs := graphql.FieldConfigArgument{
		"guid":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"direction": &graphql.ArgumentConfig{Type: graphql.String},
		"depth":     &graphql.ArgumentConfig{Type: graphql.Int},
	}
	pathArgs := graphql.FieldConfigArgument{
		"guid":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"nodeId": &graphql.ArgumentConfig{Type: graphql.String},
	}

	buildGraph := func(p graphql.ResolveParams) (*lineage.Graph, error) {
		guid, err := guidArg(p)
		if err != nil {
			return nil, err
		}
		return svc.BuildGraph(p.Context, guid, directionArg(p), depthArg(p))
	}

	pathStart := func(p graphql.ResolveParams, g *lineage.Graph) string {
		if v, ok := p.Args["nodeId"].(string); ok && v != "" {
			return v
		}
		return g.CenterNodeID
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"lineage": &graphql.Field{
				Type: graphType,
				Args: lineageArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return buildGraph(p)
				},
			},
			"impactPath": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Args: pathArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					g, err := buildGraph(p)
					if err != nil {
						return nil, err
					}
					return analysis.FindImpactPath(g, pathStart(p, g)), nil
				},
			},
			"rootCausePath": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Args: pathArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					g, err := buildGraph(p)
					if err != nil {
						return nil, err
					}
					return analysis.FindRootCausePath(g, pathStart(p, g)), nil
				},
			},
			"coverage": &graphql.Field{
				Type: coverageType,
				Args: lineageArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					g, err := buildGraph(p)
					if err != nil {
						return nil, err
					}
					return analysis.CalculateCoverage(g), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
