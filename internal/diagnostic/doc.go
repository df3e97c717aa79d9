// Package diagnostic collects findings produced by static checks of capital
// rule tables: invalid rules (errors), unreachable rules (warnings) and
// states no rule answers for (infos).
//
// Diagnostics.Error folds the error findings into one error whose causes can
// be matched with errors.Is.
package diagnostic
