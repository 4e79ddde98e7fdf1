package constant

// AsciiArtLogo is the banner shown above the root command help.
const AsciiArtLogo = `
       _       _ _ _
  __ _| | __ _| (_) |__
 / _' | |/ _' | | | '_ \
| (_| | | (_| | | | |_) |
 \__,_|_|\__, |_|_|_.__/
         |___/`
