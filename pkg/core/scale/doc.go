// Package scale maps data values from a field's domain onto a normalized
// output range.
//
// # Types
//
// Four scale types are supported:
//
//   - [TypeLinear]: continuous numbers, mapped with go-moremath's linear scale
//   - [TypeTime]: dates and timestamps, mapped linearly in Unix milliseconds
//   - [TypeCategory]: discrete values, mapped by index
//   - [TypeIdentity]: a field with no data, mapped to the range start
//
// [New] infers the type from the data unless a [Def] names one. A Def may
// also pin the domain bounds with Min and Max; pinned bounds are never
// changed by [Scale.SetMin] or [Scale.SetMax], which is how callers keep
// control over baseline adjustment.
//
// # Mapping
//
// Mapping is a two step process: [Scale.Translate] turns a raw value into a
// number (category index, millisecond timestamp, or the number itself), and
// [Scale.Scale] maps that number into the output range. [Scale.Map] does
// both.
package scale
