// Package scenario loads simulation input from YAML or JSON documents through
// afs, so scenarios can live on the local file system, in memory or in any
// storage afs supports.
package scenario
