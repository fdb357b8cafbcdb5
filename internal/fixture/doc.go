// Package fixture loads FIX matching fixtures from YAML files.
//
// A fixture file holds one of three top-level documents:
//
//	criteria:            # expectations, see CriteriaDoc
//	  type: NewOrderList
//	  body:   [{tag: 11, text: ABC}]
//	  header: [{tag: 50, text: XYZ}]
//	  groups:
//	    - {occurrence: 1, tag: 73, fields: [{tag: 11, text: DEF}]}
//
//	message:             # a candidate message, raw FIX text values
//	  type: E
//	  body:   [{tag: 11, value: ABC}]
//	  groups:
//	    - {tag: 73, fields: [{tag: 11, value: DEF}]}
//
//	cases:               # self-checking criteria/message pairs
//	  - name: first leg
//	    criteria: {...}
//	    message: {...}
//	    expect: match    # match, no-match or error
//
// Files are checked against an embedded JSON Schema before they are decoded,
// then semantically (values must parse as their declared kind). ${VAR} and
// ${VAR:-default} references are expanded from the environment first.
package fixture
