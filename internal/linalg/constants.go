package linalg

import "gonum.org/v1/gonum/mat"

// conditionLimit is the largest condition number accepted before a system is
// reported as singular. It matches gonum's own threshold for Condition errors.
const conditionLimit = mat.ConditionTolerance
