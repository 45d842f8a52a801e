package rom8

var esPlusKeys = []struct {
	name   string
	ki, ko uint16
}{
	{"Shift", 0x80, 0x01},
	{"Alpha", 0x80, 0x02},
	{"Up", 0x80, 0x04},
	{"Right", 0x80, 0x08},
	{"Mode", 0x80, 0x10},
	{"Abs", 0x40, 0x01},
	{"x^3", 0x40, 0x02},
	{"Left", 0x40, 0x04},
	{"Down", 0x40, 0x08},
	{"x^-1", 0x40, 0x10},
	{"log_x", 0x40, 0x20},
	{"a/b", 0x20, 0x01},
	{"sqrt", 0x20, 0x02},
	{"x^2", 0x20, 0x04},
	{"x^n", 0x20, 0x08},
	{"log", 0x20, 0x10},
	{"ln", 0x20, 0x20},
	{"(-)", 0x10, 0x01},
	{"dms", 0x10, 0x02},
	{"hyp", 0x10, 0x04},
	{"sin", 0x10, 0x08},
	{"cos", 0x10, 0x10},
	{"tan", 0x10, 0x20},
	{"RCL", 0x08, 0x01},
	{"ENG", 0x08, 0x02},
	{"(", 0x08, 0x04},
	{")", 0x08, 0x08},
	{"S<=>D", 0x08, 0x10},
	{"M+", 0x08, 0x20},
	{"7", 0x04, 0x01},
	{"8", 0x04, 0x02},
	{"9", 0x04, 0x04},
	{"DEL", 0x04, 0x08},
	{"AC", 0x04, 0x10},
	{"4", 0x02, 0x01},
	{"5", 0x02, 0x02},
	{"6", 0x02, 0x04},
	{"X", 0x02, 0x08},
	{"div", 0x02, 0x10},
	{"1", 0x01, 0x01},
	{"2", 0x01, 0x02},
	{"3", 0x01, 0x04},
	{"+", 0x01, 0x08},
	{"-", 0x01, 0x10},
	{"0", 0x10, 0x40},
	{".", 0x08, 0x40},
	{"x10", 0x04, 0x40},
	{"Ans", 0x02, 0x40},
	{"=", 0x01, 0x40},
}

// ESPlusKeymap returns the keymap of the fx-83GT+ and other ES+ models
func ESPlusKeymap() Keymap {
	var k Keymap
	for _, key := range esPlusKeys {
		// The table only holds valid addresses
		_ = k.Key(key.name, key.ki, key.ko)
	}
	return k
}
