// Package workflow composes the drafting pipeline end to end: normalize the
// caller's input, optionally interpret and apply an edit, render through the
// brand layout and either preview the delivery plan or hand the result to a
// mail provider.
//
// The Service also owns the iteration loop's memory. Every preview records
// the normalized base and the edit it carried under the caller's
// conversation id; a deliver call that omits an explicit update falls back
// to that memory, preferring the last natural-language instruction
// (re-interpreted) over the last structured update. Delivery never clears
// the slot - the conversation can keep iterating after a draft ships.
//
// Collaborator calls are bounded by a timeout and their failures surface as
// tagged delivery.Failure values, so the conversational layer can decide
// whether to re-prompt the user instead of retrying blindly.
package workflow
