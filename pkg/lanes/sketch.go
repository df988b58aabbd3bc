package lanes

// The inverse direction, lanes -> tags, is advisory only and not implemented
// by this package. A hypothetical implementation would, from an assembled
// Road:
//
//   - set lanes from the count of Travel lanes designated Motor, Bus, or
//     SharedLeftTurn
//   - set oneway=yes when every Motor Travel lane has Direction == Forward
//   - emit sidewalk=left|right|both from the outermost Foot Travel lanes
//   - emit parking:lane:{left,right}=parallel by presence of a Parking lane
//     on each side of the central driving cluster
//   - emit cycleway:{left,right}=lane analogously, from Bicycle Travel lanes
//   - emit lanes:both_ways=1 and turn:lanes:both_ways=left when a
//     SharedLeftTurn lane is present
//
// None of this is implemented here: the source this was sketched from
// asserts on duplicate tag keys and its contract beyond this outline is
// under-specified.
