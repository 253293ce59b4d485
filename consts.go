package appctx

const (
	emptyString = ""
	pathSep     = " -> "
)

const (
	logComponent = "appctx"

	fieldComponent = "component"
	fieldContainer = "container"
	fieldBean      = "bean"
	fieldDeps      = "deps"
	fieldType      = "type"
	fieldBeans     = "beans"
	fieldElapsed   = "elapsed"
	fieldOrdering  = "ordering"
)
