// Package jsonl builds record arrays from JSON Lines data. This parser uses
// https://github.com/tidwall/gjson to process data, and supports schema
// field names formatted as gjson paths. Values within the JSON which do not
// correspond to a schema field are ignored.
package jsonl
