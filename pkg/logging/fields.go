package logging

import "time"

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component names the emitting subsystem
func Component(name string) Field {
	return String("component", name)
}

// Domain field helpers

// Guid tags an entry with the asset guid it concerns
func Guid(guid string) Field {
	return String("guid", guid)
}

// Direction tags an entry with a lineage direction
func Direction(direction string) Field {
	return String("direction", direction)
}

// Nodes tags an entry with a graph's node count
func Nodes(count int) Field {
	return Int("nodes", count)
}

// Edges tags an entry with a graph's edge count
func Edges(count int) Field {
	return Int("edges", count)
}

// Latency tags an entry with an operation duration
func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
