package juice

// --- errors ---
const missingTarget = "juice: no target given and no chained target set with Juice.Add()"
const invalidKind = "juice: invalid effect kind"
const nilScene = "juice: can't create effects without a Scene"
