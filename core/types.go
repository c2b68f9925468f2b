// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// This file declares NodeType, Vertex, Edge, Graph, VertexOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight is NaN or Inf")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrTypeConflict indicates an existing vertex was re-added with another NodeType.
	ErrTypeConflict = errors.New("core: vertex type conflict")

	// ErrUnknownNodeType indicates a node type label outside {doc, term}.
	ErrUnknownNodeType = errors.New("core: unknown node type")
)

// NodeType is the class tag carried by every vertex of a textnet graph.
type NodeType uint8

const (
	// NodeUntyped is the zero value; vertices added without WithType carry it.
	NodeUntyped NodeType = iota
	// NodeDoc tags document vertices.
	NodeDoc
	// NodeTerm tags term vertices.
	NodeTerm
)

// String renders the tag as used on the visualization surface ("doc"/"term").
func (t NodeType) String() string {
	switch t {
	case NodeDoc:
		return "doc"
	case NodeTerm:
		return "term"
	default:
		return "untyped"
	}
}

// MarshalText implements encoding.TextMarshaler so NodeType serializes as its label.
func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseNodeType maps "doc" / "term" to the matching NodeType.
// Any other input yields ErrUnknownNodeType.
func ParseNodeType(s string) (NodeType, error) {
	switch s {
	case "doc":
		return NodeDoc, nil
	case "term":
		return NodeTerm, nil
	default:
		return NodeUntyped, fmt.Errorf("ParseNodeType(%q): %w", s, ErrUnknownNodeType)
	}
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; Type is the fixed class
// tag; Attrs holds externally supplied named attributes.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Type is the node class (doc or term).
	Type NodeType

	// Attrs stores arbitrary user data. Views copy the map, never share it.
	Attrs map[string]interface{}
}

// Attr returns the named attribute and whether it was set at all.
// A present attribute may still hold a nil value (document missing from the source map).
func (v *Vertex) Attr(name string) (interface{}, bool) {
	val, ok := v.Attrs[name]
	return val, ok
}

// Edge represents an undirected connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the endpoint given first to AddEdge.
	From string

	// To is the endpoint given second to AddEdge.
	To string

	// Weight is the edge weight (TF-IDF weight or derived similarity).
	Weight float64
}

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// VertexOption configures a vertex when it is first added.
type VertexOption func(v *Vertex)

// WithType sets the vertex class tag.
func WithType(t NodeType) VertexOption {
	return func(v *Vertex) { v.Type = t }
}

// Graph is the core in-memory graph data structure.
//
// It is always undirected and weighted; parallel edges and self-loops are
// rejected. mu protects every field below it.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	mu sync.RWMutex // guards vertices, edges and adjacency

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	vindex     map[string]int     // vertex ID → insertion position
	vorder     []string           // vertex IDs in insertion order
	edges      map[string]*Edge   // edge ID → Edge
	eorder     []string           // edge IDs in insertion order

	// adjacency[u][v] = edge ID; mirrored for u != v.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		vindex:    make(map[string]int),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
