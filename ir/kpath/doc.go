// Package kpath provides kinded paths into JSON documents.
//
// A path is a sequence of segments, each either an array index or an object
// key. The kind of a segment states the kind of container it addresses, so
// a path also describes the structure needed to reach its target.
//
// # Usage
//
//	p := kpath.Path{kpath.Key("users"), kpath.Index(0), kpath.Key("name")}
//	p.String()          // $["users"][0]["name"]
//
//	q, err := kpath.Parse("users[0].name")
//	p.Equal(q)          // true
//
// # Syntax accepted by Parse
//
//	users[0].name       // bare keys separated by '.'
//	$.users[0].name     // optional leading '$'
//	$["users"][0]       // the String form
//	"odd.key"[2]        // quoted keys
//
// # Related Packages
//
//   - github.com/signadot/nodeedit/ir - IR representation
package kpath
