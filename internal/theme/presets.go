package theme

const reset = "\033[0m"

var builtin = map[string]map[Role]string{
	"material_dark": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;96m", // cyan bold
		RoleSubheader:      "\033[1;93m", // yellow bold
		RoleOption:         "\033[0;97m",
		RoleSelectedOption: "\033[1;94m",
		RoleBorder:         "\033[1;36m",
	},
	"vampire": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;91m",
		RoleSubheader:      "\033[1;93m",
		RoleOption:         "\033[0;37m",
		RoleSelectedOption: "\033[1;35m",
		RoleBorder:         "\033[1;31m",
	},
	"night_owl": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;97m",
		RoleSubheader:      "\033[1;95m",
		RoleOption:         "\033[0;37m",
		RoleSelectedOption: "\033[1;94m",
		RoleBorder:         "\033[1;35m",
	},
	"ayu_dark": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;94m",
		RoleSubheader:      "\033[1;93m",
		RoleOption:         "\033[0;37m",
		RoleSelectedOption: "\033[1;92m",
		RoleBorder:         "\033[1;96m",
	},
	"nord_dark": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;96m",
		RoleSubheader:      "\033[1;94m",
		RoleOption:         "\033[0;97m",
		RoleSelectedOption: "\033[1;93m",
		RoleBorder:         "\033[1;34m",
	},
	"nord_light": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;97m",
		RoleSubheader:      "\033[1;96m",
		RoleOption:         "\033[0;37m",
		RoleSelectedOption: "\033[1;92m",
		RoleBorder:         "\033[1;90m",
	},
	"snow_storm": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;97m",
		RoleSubheader:      "\033[1;96m",
		RoleOption:         "\033[0;37m",
		RoleSelectedOption: "\033[1;34m",
		RoleBorder:         "\033[1;90m",
	},
	"aurora": {
		RoleReset:          reset,
		RoleHeader:         "\033[1;91m",
		RoleSubheader:      "\033[1;93m",
		RoleOption:         "\033[0;37m",
		RoleSelectedOption: "\033[1;92m",
		RoleBorder:         "\033[1;94m",
	},
	// 24-bit colour; needs a truecolor terminal.
	"monokai": {
		RoleReset:          reset,
		RoleHeader:         "\033[38;2;249;145;159m",
		RoleSubheader:      "\033[38;2;239;138;98m",
		RoleOption:         "\033[0;97m",
		RoleSelectedOption: "\033[38;2;135;229;255m",
		RoleBorder:         "\033[38;2;196;132;251m",
	},
}
