/*
Package fill is the engine shared by the dialect adapters.

Every dialect version is described by tables of rules. A Rule names an
element child or an attribute and says how its text, or the whole node,
is applied to the value object being filled. Table.Apply walks a table
against an element: each element rule consults the first matching child
once, each attribute rule the matching attribute, and rules whose
source is absent are skipped, leaving the target field at its default.

Text is converted with the coerce package. A value which cannot be
converted is logged at verbosity 1 and skipped; conversion failures are
never returned as errors.

Repeating children are handled by Each rules, which honour the
retrieval limit of the fill settings: the limit is applied to the
matching source elements before any item is constructed, so a
collection filled from N > limit elements is built from exactly the
first limit of them, in document order.
*/
package fill
