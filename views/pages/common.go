package pages

import (
	"github.com/loganlanou/dealerpost/views/helpers"
)

const (
	cardClass   = "bg-white rounded-lg shadow p-6"
	inputClass  = "w-full rounded-md border border-gray-300 px-3 py-2 text-sm"
	buttonClass = "inline-flex items-center rounded-md bg-blue-600 px-4 py-2 text-sm font-medium text-white hover:bg-blue-700"
	linkClass   = "text-sm text-blue-600 hover:underline"
)

func header(hw *helpers.Writer, title, subtitle string) {
	hw.Rawf("<div class=\"mb-6\"><h1 class=\"text-3xl font-bold text-gray-900\">%s</h1>", title)
	if subtitle != "" {
		hw.Rawf("<p class=\"text-gray-600 mt-2\">%s</p>", subtitle)
	}
	hw.Raw("</div>")
}

func stat(hw *helpers.Writer, label, value string) {
	hw.Rawf("<div class=\"%s\"><p class=\"text-sm font-medium text-gray-600\">%s</p><p class=\"text-2xl font-bold text-gray-900\">%s</p></div>", cardClass, label, value)
}

func alert(hw *helpers.Writer, msg string) {
	hw.Rawf("<div class=\"rounded-md bg-red-50 p-4 text-sm text-red-800 mb-6\">%s</div>", msg)
}

func empty(hw *helpers.Writer, msg string) {
	hw.Rawf("<div class=\"%s text-center text-gray-500\">%s</div>", cardClass, msg)
}

func option(hw *helpers.Writer, value, label string, selected bool) {
	if selected {
		hw.Rawf("<option value=\"%s\" selected>%s</option>", value, label)
		return
	}
	hw.Rawf("<option value=\"%s\">%s</option>", value, label)
}

func fieldError(hw *helpers.Writer, errs map[string]string, field string) {
	if msg, ok := errs[field]; ok {
		hw.Rawf("<p class=\"mt-1 text-sm text-red-600\">%s</p>", msg)
	}
}
