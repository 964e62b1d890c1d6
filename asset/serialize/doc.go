// Package serialize holds small structures embedded in many record types.
package serialize
