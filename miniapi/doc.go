// Package miniapi exposes the conventional mini-app host surface as named
// promise-returning methods over a bridge.Bridge. Every method is a one-line
// delegation to the generic conversion mechanism; no method adds logic,
// branching, or state of its own. The HTTP-verb shortcuts (Get, Post, Put,
// Delete) are the sole exception: they pre-populate the request method and
// fold their positional url/data/header arguments into the options value
// before delegating.
//
// # Quick Start
//
//	client := miniapi.New(cap)
//	p, err := client.Login(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := p.Await(ctx)
package miniapi
