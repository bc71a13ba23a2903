/*
File: templates.go
Description: HTML page template for rendered dataset reports. The report body
is produced as Markdown and converted to HTML before being embedded here, so
the template only provides the page chrome.
*/

package reporting

// pageTemplate wraps a rendered report body in a standalone HTML document.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Dataset Report - {{.Source}}</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            max-width: 960px;
            margin: 0 auto;
            padding: 24px;
            color: #2d3748;
            background: #f7fafc;
        }

        h1 {
            color: #4a5568;
            border-bottom: 2px solid #e2e8f0;
            padding-bottom: 8px;
        }

        h2 {
            color: #4a5568;
            margin-top: 32px;
        }

        table {
            border-collapse: collapse;
            margin: 16px 0;
            background: #ffffff;
            box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
        }

        th, td {
            border: 1px solid #e2e8f0;
            padding: 8px 14px;
            text-align: left;
        }

        th {
            background: #edf2f7;
            text-transform: uppercase;
            font-size: 0.8rem;
            letter-spacing: 0.5px;
        }

        .footer {
            margin-top: 40px;
            color: #718096;
            font-size: 0.85rem;
        }
    </style>
</head>
<body>
    {{.Body}}
    <div class="footer">
        Generated {{.GeneratedAt}} &middot; run {{.RunID}}
    </div>
</body>
</html>
`
