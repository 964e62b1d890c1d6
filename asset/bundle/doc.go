// Package bundle decodes the bookkeeping records of an asset bundle.
package bundle
